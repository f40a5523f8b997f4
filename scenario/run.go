package scenario

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/wayfind/astar"
	"github.com/katalvlaran/wayfind/gridgraph"
	"github.com/katalvlaran/wayfind/metrics"
	"github.com/katalvlaran/wayfind/xygraph"
)

// RunOptions configures Run. The zero value runs to completion silently
// with slog.Default().
type RunOptions struct {
	// Logger receives run events. Nil means slog.Default().
	Logger *slog.Logger
	// Metrics, when set, receives engine counters and the outcome.
	Metrics *metrics.Recorder
	// Trace logs every expansion, relaxation and suppression at debug level.
	Trace bool
	// StepBudget > 0 drives the engine in slices of that many expansions,
	// logging progress after each slice.
	StepBudget int
}

// Report summarises one run.
type Report struct {
	RunID    string   `yaml:"run_id"`
	Scenario string   `yaml:"scenario"`
	State    string   `yaml:"state"`
	Found    bool     `yaml:"found"`
	Path     []string `yaml:"path,omitempty"`
	Cost     int      `yaml:"cost,omitempty"`
	Expanded int      `yaml:"expanded"`
}

// Run builds the scenario's graph and searches it. A cancelled ctx returns
// the context error together with a partial report.
func Run(ctx context.Context, sc *Scenario, opts RunOptions) (Report, error) {
	if err := sc.Validate(); err != nil {
		return Report{}, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	rep := Report{RunID: uuid.NewString(), Scenario: sc.Name}
	logger = logger.With(slog.String("run_id", rep.RunID), slog.String("scenario", sc.Name))
	logger.Info("search started",
		slog.String("kind", string(sc.Kind)),
		slog.String("start", sc.Start.String()),
		slog.String("target", sc.Target.String()))

	var err error
	switch sc.Kind {
	case KindXY:
		err = runXY(ctx, sc, logger, opts, &rep)
	case KindGrid:
		err = runGrid(ctx, sc, logger, opts, &rep)
	}
	if err != nil {
		if opts.Metrics != nil && ctx.Err() != nil {
			opts.Metrics.ObserveInterrupted()
		}
		logger.Warn("search aborted", slog.Int("expanded", rep.Expanded), slog.Any("error", err))

		return rep, err
	}
	if opts.Metrics != nil {
		opts.Metrics.ObserveOutcome(rep.Found, len(rep.Path))
	}
	logger.Info("search finished",
		slog.String("state", rep.State),
		slog.Int("expanded", rep.Expanded),
		slog.Int("cost", rep.Cost),
		slog.Int("path_len", len(rep.Path)))

	return rep, nil
}

func runXY(ctx context.Context, sc *Scenario, logger *slog.Logger, opts RunOptions, rep *Report) error {
	cost := xygraph.ProductCost
	if sc.Cost == CostManhattan {
		cost = xygraph.ManhattanCost
	}
	g := xygraph.New(xygraph.WithCost(cost))
	for _, n := range sc.Nodes {
		if _, err := g.AddNode(n.ID, n.X, n.Y); err != nil {
			return err
		}
	}
	for _, n := range sc.Nodes {
		for _, to := range n.Edges {
			if err := g.AddEdge(n.ID, to); err != nil {
				return err
			}
		}
	}
	eng, err := g.Search(sc.Start.ID, sc.Target.ID,
		beamFilter[int, int, *xygraph.Node](sc.Beam),
		instrument[int, int, *xygraph.Node](logger, opts)...)
	if err != nil {
		return err
	}

	return drive(ctx, eng, logger, opts.StepBudget, rep, func(k int) string { return fmt.Sprint(k) })
}

func runGrid(ctx context.Context, sc *Scenario, logger *slog.Logger, opts RunOptions, rep *Report) error {
	conn := gridgraph.Conn4
	if sc.Conn == 8 {
		conn = gridgraph.Conn8
	}
	gg, err := gridgraph.NewGridGraph(sc.Grid, gridgraph.GridOptions{LandThreshold: sc.LandThreshold, Conn: conn})
	if err != nil {
		return err
	}
	eng, err := gg.Search(sc.Start.XY(), sc.Target.XY(),
		beamFilter[int, int, *gridgraph.Cell](sc.Beam),
		instrument[int, int, *gridgraph.Cell](logger, opts)...)
	if err != nil {
		return err
	}

	return drive(ctx, eng, logger, opts.StepBudget, rep, func(k int) string {
		x, y := gg.Coordinate(k)

		return fmt.Sprintf("(%d,%d)", x, y)
	})
}

// drive runs eng to a terminal state and fills rep.
func drive[K cmp.Ordered, S astar.Score, N astar.Node[K, S, N]](
	ctx context.Context, eng *astar.Engine[K, S, N], logger *slog.Logger, budget int, rep *Report, label func(K) string,
) error {
	if budget <= 0 {
		if _, err := eng.Run(ctx); err != nil {
			rep.Expanded = eng.Expanded()

			return err
		}
	} else {
		for !eng.State().Terminal() {
			if err := ctx.Err(); err != nil {
				rep.Expanded = eng.Expanded()

				return fmt.Errorf("scenario: interrupted after %d expansions: %w", eng.Expanded(), err)
			}
			eng.Advance(budget)
			logger.Debug("slice done",
				slog.Int("expanded", eng.Expanded()),
				slog.Int("frontier", eng.Frontier().Len()))
		}
	}

	rep.State = eng.State().String()
	rep.Found = eng.HasSolution()
	rep.Expanded = eng.Expanded()
	if rep.Found {
		rep.Cost = int(eng.CurrentNode().G())
		for _, k := range eng.PathKeys() {
			rep.Path = append(rep.Path, label(k))
		}
	}

	return nil
}

// beamFilter combines the configured bounds; nil when none is set.
func beamFilter[K cmp.Ordered, S astar.Score, N astar.Node[K, S, N]](b Beam) astar.BeamFilter[K, S, N] {
	var filters []astar.BeamFilter[K, S, N]
	if b.MaxFrontier > 0 {
		filters = append(filters, astar.MaxFrontier[K, S, N](b.MaxFrontier))
	}
	if b.ScoreCeiling != nil {
		filters = append(filters, astar.ScoreCeiling[K, S, N](S(*b.ScoreCeiling)))
	}
	switch len(filters) {
	case 0:
		return nil
	case 1:
		return filters[0]
	}

	return astar.AnyOf(filters...)
}

// instrument wires metrics and trace logging into engine hooks.
func instrument[K cmp.Ordered, S astar.Score, N astar.Node[K, S, N]](logger *slog.Logger, opts RunOptions) []astar.Option[N] {
	rec := opts.Metrics
	if !opts.Trace {
		if rec == nil {
			return nil
		}

		return metrics.Hooks[N](rec)
	}

	return []astar.Option[N]{
		astar.WithOnExpand(func(n N) {
			if rec != nil {
				rec.Expansions.Inc()
			}
			logger.Debug("expand", slog.Any("key", n.Key()), slog.Any("g", n.G()), slog.Any("h", n.H()))
		}),
		astar.WithOnRelax(func(n, pred N) {
			if rec != nil {
				rec.Relaxations.Inc()
			}
			logger.Debug("relax", slog.Any("key", n.Key()), slog.Any("from", pred.Key()), slog.Any("g", n.G()))
		}),
		astar.WithOnSuppress(func(n N) {
			if rec != nil {
				rec.Suppressions.Inc()
			}
			logger.Debug("suppress", slog.Any("key", n.Key()), slog.Any("f", n.F()))
		}),
		astar.WithOnGoal(func(n N) {
			logger.Debug("goal", slog.Any("key", n.Key()), slog.Any("g", n.G()))
		}),
	}
}
