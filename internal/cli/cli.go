// Package cli turns command-line arguments into a resolved run configuration.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"cascade-ca/internal/config"
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns the resolved config, a
// boolean reporting whether the program should exit cleanly, or an
// *ExitError. Only flags that were actually given override the config file
// and environment.
func Parse(args []string, output io.Writer) (*config.Config, bool, error) {
	fs := flag.NewFlagSet("cascade", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
cascade - run a discharge cascade grid and report its totals.

Usage:
  cascade [options] [INPUT]

Arguments:
  INPUT
    File with one row of digits per line.

Options:
`)
		fs.PrintDefaults()
	}

	configPath := fs.String("config", "", "Path to a config file (yaml, json or toml).")
	fs.String("input", "", "Path to the grid file.")
	fs.String("i", "", "Path to the grid file (shorthand).")
	fs.Int("ticks", 100, "Ticks to run before reporting the discharge total.")
	fs.Int("max-sync-ticks", 0, "Extra ticks to search for a synchronized tick. 0 searches without limit.")
	fs.Bool("print", false, "Print the grid after the fixed run and after the synchronized tick.")
	fs.String("log-level", "info", "Logging level: debug, info, warn or error.")
	fs.String("log-file", "", "Also write JSON logs to this rotated file.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	keys := map[string]string{
		"input":          "input",
		"i":              "input",
		"ticks":          "ticks",
		"max-sync-ticks": "max_sync_ticks",
		"print":          "print",
		"log-level":      "log.level",
		"log-file":       "log.file",
	}
	overrides := map[string]any{}
	fs.Visit(func(f *flag.Flag) {
		key, ok := keys[f.Name]
		if !ok {
			return
		}
		if getter, ok := f.Value.(flag.Getter); ok {
			overrides[key] = getter.Get()
		}
	})
	if fs.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected at most one input file, got %d", fs.NArg())}
	}
	if fs.NArg() == 1 {
		overrides["input"] = fs.Arg(0)
	}

	cfg, err := config.Load(*configPath, overrides)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if cfg.Input == "" {
		fs.Usage()
		return nil, true, nil
	}
	return cfg, false, nil
}
