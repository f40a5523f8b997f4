package scenario_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfind/gridgraph"
	"github.com/katalvlaran/wayfind/metrics"
	"github.com/katalvlaran/wayfind/scenario"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestRun_Thirteen(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	rec := metrics.NewRecorder(prometheus.NewRegistry())

	rep, err := scenario.Run(context.Background(), scenario.Thirteen(), scenario.RunOptions{
		Logger:  logger,
		Metrics: rec,
		Trace:   true,
	})
	require.NoError(t, err)

	assert.True(t, rep.Found)
	assert.Equal(t, "solution-found", rep.State)
	assert.Equal(t, []string{"0", "2", "4", "10", "12"}, rep.Path)
	assert.Equal(t, 252, rep.Cost)
	assert.Equal(t, 12, rep.Expanded)
	_, err = uuid.Parse(rep.RunID)
	assert.NoError(t, err)

	assert.Equal(t, 12.0, testutil.ToFloat64(rec.Expansions))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.Searches.WithLabelValues(metrics.OutcomeFound)))
	assert.Contains(t, buf.String(), `"run_id":"`+rep.RunID+`"`)
	assert.Contains(t, buf.String(), `"msg":"expand"`)
	assert.Contains(t, buf.String(), `"msg":"goal"`)
}

func TestRun_StepBudgetMatchesRun(t *testing.T) {
	full, err := scenario.Run(context.Background(), scenario.Thirteen(), scenario.RunOptions{Logger: quietLogger()})
	require.NoError(t, err)
	sliced, err := scenario.Run(context.Background(), scenario.Thirteen(), scenario.RunOptions{Logger: quietLogger(), StepBudget: 5})
	require.NoError(t, err)

	assert.Equal(t, full.Path, sliced.Path)
	assert.Equal(t, full.Cost, sliced.Cost)
	assert.Equal(t, full.Expanded, sliced.Expanded)
	assert.NotEqual(t, full.RunID, sliced.RunID)
}

func TestRun_Terrain(t *testing.T) {
	sc, err := scenario.Load("testdata/terrain.yaml")
	require.NoError(t, err)

	rep, err := scenario.Run(context.Background(), sc, scenario.RunOptions{Logger: quietLogger()})
	require.NoError(t, err)
	assert.True(t, rep.Found)
	assert.Equal(t, 34, rep.Cost)
	require.Len(t, rep.Path, 4)
	assert.Equal(t, "(0,0)", rep.Path[0])
	assert.Equal(t, "(2,2)", rep.Path[3])
}

func TestRun_BeamExhausts(t *testing.T) {
	sc := scenario.Thirteen()
	zero := 0
	sc.Beam.ScoreCeiling = &zero
	rec := metrics.NewRecorder(nil)

	rep, err := scenario.Run(context.Background(), sc, scenario.RunOptions{Logger: quietLogger(), Metrics: rec})
	require.NoError(t, err)
	assert.False(t, rep.Found)
	assert.Equal(t, "exhausted", rep.State)
	assert.Empty(t, rep.Path)
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.Suppressions))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.Searches.WithLabelValues(metrics.OutcomeExhausted)))
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec := metrics.NewRecorder(nil)

	for _, budget := range []int{0, 3} {
		_, err := scenario.Run(ctx, scenario.Thirteen(), scenario.RunOptions{Logger: quietLogger(), Metrics: rec, StepBudget: budget})
		assert.ErrorIs(t, err, context.Canceled, "budget=%d", budget)
	}
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.Searches.WithLabelValues(metrics.OutcomeInterrupted)))
}

func TestRun_InvalidGridEndpoint(t *testing.T) {
	sc := &scenario.Scenario{
		Kind:   scenario.KindGrid,
		Start:  scenario.Point(0, 0),
		Target: scenario.Point(1, 0),
		Grid:   [][]int{{1, 0}},
	}
	_, err := scenario.Run(context.Background(), sc, scenario.RunOptions{Logger: quietLogger()})
	assert.ErrorIs(t, err, gridgraph.ErrBlocked)
}
