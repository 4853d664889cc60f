package cascade

import "strconv"

// Config controls how a registry-built Sim obtains its starting grid. When
// Initial is nil and Input is empty a random Width x Height digit board is
// generated from Seed.
type Config struct {
	Width  int
	Height int
	Seed   int64

	Input   string
	Initial [][]int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 10, Height: 10, Seed: 42}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["input"]; ok {
		c.Input = v
	}
	return c
}
