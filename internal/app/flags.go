package app

import (
	"flag"
	"io"
	"strconv"

	"cascade-ca/internal/config"
)

// LoadConfig parses viewer flags and resolves them against the config file
// and environment. Flags left unset keep the file or default value.
func LoadConfig(args []string, output io.Writer) (*config.Config, error) {
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	fs.SetOutput(output)

	configPath := fs.String("config", "", "path to a config file")
	fs.String("sim", "cascade", "simulation to run")
	fs.String("input", "", "grid file; a random board is used when empty")
	fs.Int("scale", 40, "pixel scale multiplier")
	fs.Int("tps", 10, "simulation ticks per second")
	fs.Int64("seed", 42, "seed for random boards")
	fs.Int("w", 10, "random board width")
	fs.Int("h", 10, "random board height")
	fs.String("log-level", "info", "logging level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	keys := map[string]string{
		"sim":       "viewer.sim",
		"input":     "input",
		"scale":     "viewer.scale",
		"tps":       "viewer.tps",
		"seed":      "viewer.seed",
		"w":         "viewer.width",
		"h":         "viewer.height",
		"log-level": "log.level",
	}
	overrides := map[string]any{}
	fs.Visit(func(f *flag.Flag) {
		if key, ok := keys[f.Name]; ok {
			overrides[key] = f.Value.(flag.Getter).Get()
		}
	})
	return config.Load(*configPath, overrides)
}

// SimOptions converts a resolved config into the string map sim factories take.
func SimOptions(cfg *config.Config) map[string]string {
	opts := map[string]string{
		"w":    strconv.Itoa(cfg.Viewer.Width),
		"h":    strconv.Itoa(cfg.Viewer.Height),
		"seed": strconv.FormatInt(cfg.Viewer.Seed, 10),
	}
	if cfg.Input != "" {
		opts["input"] = cfg.Input
	}
	return opts
}
