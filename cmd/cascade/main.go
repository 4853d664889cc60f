package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"cascade-ca/internal/cli"
	"cascade-ca/internal/core"
	"cascade-ca/internal/logs"
	"cascade-ca/internal/sims/cascade"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, simulates the configured grid and writes both answers to
// outW. Logs go to logW.
func run(outW, logW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := logs.New("cascade", cfg.Log, logW)
	defer func() { _ = logger.Sync() }()

	rows, err := cascade.ParseFile(cfg.Input)
	if err != nil {
		return fmt.Errorf("load input: %w", err)
	}
	grid, err := core.NewGrid(rows)
	if err != nil {
		return fmt.Errorf("load input: %w", err)
	}
	size := grid.Size()
	logger.Debug("grid loaded", zap.String("input", cfg.Input), zap.Int("width", size.W), zap.Int("height", size.H))

	ctrl := cascade.NewController(cascade.NewEngine(grid), cascade.WithLogger(logger))

	total := ctrl.Run(cfg.Ticks)
	fmt.Fprintf(outW, "total discharges after %d ticks: %d\n", cfg.Ticks, total)
	if cfg.Print {
		fmt.Fprint(outW, ctrl.Snapshot().String())
	}

	tick, err := ctrl.FindSynchronizedTick(cfg.MaxSyncTicks)
	if err != nil {
		return fmt.Errorf("search synchronized tick: %w", err)
	}
	fmt.Fprintf(outW, "first synchronized tick: %d\n", tick)
	if cfg.Print {
		fmt.Fprint(outW, ctrl.Snapshot().String())
	}
	return nil
}
