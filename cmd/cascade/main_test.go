package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"cascade-ca/internal/cli"
	"cascade-ca/internal/sims/cascade"
)

const benchmarkInput = `5483143223
2745854711
5264556173
6141336146
6357385478
4167524645
2176841721
6882881134
4846848554
5283751526
`

func writeInput(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grid.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRunPrintsBothAnswers(t *testing.T) {
	// --- Arrange ---
	path := writeInput(t, benchmarkInput)
	out, logOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(out, logOut, []string{path})

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "total discharges after 100 ticks: 1656\nfirst synchronized tick: 195\n", out.String())
	require.Contains(t, logOut.String(), "run complete")
}

func TestRunPrintsGrids(t *testing.T) {
	path := writeInput(t, benchmarkInput)
	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, []string{"-ticks", "10", "-print", path})

	require.NoError(t, err)
	require.Contains(t, out.String(), "total discharges after 10 ticks: 204\n")
	// After the synchronized tick every cell is at rest.
	require.Contains(t, out.String(), "first synchronized tick: 195\n0000000000\n")
}

func TestRunRejectsMalformedInput(t *testing.T) {
	path := writeInput(t, "123\n45\n")
	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, []string{path})

	require.ErrorIs(t, err, cascade.ErrInvalidGrid)
	require.Empty(t, out.String(), "no tick may run for malformed input")
}

func TestRunReportsExhaustedSearch(t *testing.T) {
	path := writeInput(t, benchmarkInput)
	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, []string{"-max-sync-ticks", "5", path})

	require.ErrorIs(t, err, cascade.ErrNoSynchronization)
	require.Contains(t, err.Error(), "ticks 101..105")
	require.Contains(t, out.String(), "1656")
}

func TestRunHelpAndParseErrors(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, run(out, &bytes.Buffer{}, []string{"-h"}))
	require.Contains(t, out.String(), "Usage:")

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"--nope"})
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
}
