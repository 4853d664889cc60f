package cascade

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Reference answers for benchmarkGrid.
const (
	benchmarkDischargesAfter10  = 204
	benchmarkDischargesAfter100 = 1656
	benchmarkSynchronizedTick   = 195
)

func newBenchmarkController(t *testing.T, opts ...Option) *Controller {
	t.Helper()
	c, err := NewControllerFromString(benchmarkGrid, opts...)
	require.NoError(t, err)
	return c
}

func TestRunGoldenTotals(t *testing.T) {
	t.Parallel()

	c := newBenchmarkController(t)
	require.Equal(t, benchmarkDischargesAfter10, c.Run(10))
	require.Equal(t, 10, c.Tick())

	// Run continues from the previous call and reports the running total.
	require.Equal(t, benchmarkDischargesAfter100, c.Run(90))
	require.Equal(t, 100, c.Tick())
	require.Equal(t, benchmarkDischargesAfter100, c.TotalDischarges())

	_, synced := c.FirstSynchronizedTick()
	require.False(t, synced)
}

func TestFindSynchronizedTickAfterRun(t *testing.T) {
	t.Parallel()

	c := newBenchmarkController(t)
	c.Run(100)

	tick, err := c.FindSynchronizedTick(0)
	require.NoError(t, err)
	require.Equal(t, benchmarkSynchronizedTick, tick)
	require.Equal(t, benchmarkSynchronizedTick, c.Tick())
	require.Equal(t, c.Engine().Grid().TotalCells(), c.LastDischarges())
}

func TestFindSynchronizedTickFromStart(t *testing.T) {
	t.Parallel()

	c := newBenchmarkController(t)
	tick, err := c.FindSynchronizedTick(0)
	require.NoError(t, err)
	require.Equal(t, benchmarkSynchronizedTick, tick)
}

func TestFindSynchronizedTickBounded(t *testing.T) {
	t.Parallel()

	c := newBenchmarkController(t)
	c.Run(100)

	_, err := c.FindSynchronizedTick(50)
	require.ErrorIs(t, err, ErrNoSynchronization)

	var syncErr *NoSynchronizationError
	require.True(t, errors.As(err, &syncErr))
	require.Equal(t, 101, syncErr.From)
	require.Equal(t, 150, syncErr.To)
	require.Equal(t, 150, c.Tick())

	// The search is recoverable: a larger bound continues where it stopped.
	tick, err := c.FindSynchronizedTick(100)
	require.NoError(t, err)
	require.Equal(t, benchmarkSynchronizedTick, tick)
}

func TestFindSynchronizedTickRemembersEarlierEvent(t *testing.T) {
	t.Parallel()

	c, err := NewControllerFromString("0\n")
	require.NoError(t, err)

	c.Run(25)
	first, ok := c.FirstSynchronizedTick()
	require.True(t, ok)
	require.Equal(t, 10, first)

	tick, err := c.FindSynchronizedTick(1)
	require.NoError(t, err)
	require.Equal(t, 10, tick)
	require.Equal(t, 25, c.Tick(), "search must not advance once an event was seen")
}

func TestRunTotalsNonDecreasing(t *testing.T) {
	t.Parallel()

	c := newBenchmarkController(t)
	prev := 0
	for i := 0; i < 200; i++ {
		n := c.Step()
		require.GreaterOrEqual(t, n, 0)
		require.LessOrEqual(t, n, 100)
		require.GreaterOrEqual(t, c.TotalDischarges(), prev)
		require.Equal(t, prev+n, c.TotalDischarges())
		prev = c.TotalDischarges()
	}
}

func TestRunIgnoresNegativeTicks(t *testing.T) {
	t.Parallel()

	c := newBenchmarkController(t)
	require.Zero(t, c.Run(-3))
	require.Zero(t, c.Tick())
}

func TestSnapshotIsDetached(t *testing.T) {
	t.Parallel()

	c, err := NewControllerFromString(ringGrid)
	require.NoError(t, err)

	before := c.Snapshot()
	require.Zero(t, before.Tick)
	require.NotContains(t, before.AtRest, true)
	require.Equal(t, ringGrid, before.String())

	c.Step()
	snap := c.Snapshot()
	require.Equal(t, 1, snap.Tick)
	require.Equal(t, 9, snap.LastDischarges)
	require.Equal(t, 9, snap.TotalDischarges)
	require.Equal(t, "34543\n40004\n50005\n40004\n34543\n", snap.String())

	rest := 0
	for i, r := range snap.AtRest {
		if r {
			rest++
			require.Zero(t, snap.Quantities[i])
		}
	}
	require.Equal(t, 9, rest)

	snap.Quantities[0] = 42
	require.Equal(t, 3, c.Engine().Grid().Quantity(0, 0))
	require.Equal(t, 1, c.Tick(), "taking snapshots must not advance the simulation")
	require.Equal(t, []int{3, 4, 5, 4, 3}, c.Snapshot().Rows()[0])
}

func TestControllerLogsSynchronizedEvent(t *testing.T) {
	t.Parallel()

	obs, logs := observer.New(zapcore.DebugLevel)
	c, err := NewControllerFromString("9\n", WithLogger(zap.New(obs)))
	require.NoError(t, err)

	c.Run(1)

	synced := logs.FilterMessage("synchronized discharge").All()
	require.Len(t, synced, 1)
	require.Equal(t, int64(1), synced[0].ContextMap()["tick"])
	require.Len(t, logs.FilterMessage("run complete").All(), 1)
}

func TestControllerLogsExhaustedSearch(t *testing.T) {
	t.Parallel()

	obs, logs := observer.New(zapcore.WarnLevel)
	c, err := NewControllerFromString("1\n", WithLogger(zap.New(obs)))
	require.NoError(t, err)

	_, err = c.FindSynchronizedTick(3)
	require.ErrorIs(t, err, ErrNoSynchronization)
	require.Len(t, logs.FilterMessage("synchronization search exhausted").All(), 1)
}
