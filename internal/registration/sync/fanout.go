// Package sync dispatches newly created plots to downstream consumers.
// Dispatch is best-effort: targets run sequentially, each target's outcome is
// recorded independently, and no failure propagates to the caller. Downstream
// systems reconcile eventually on their own schedule.
package sync

import (
	"context"
	"fmt"
	"log/slog"

	"farmgate/internal/platform/metrics"
	"farmgate/internal/registration/models"
)

// Target is one downstream consumer of plot data. SyncPlot returns false
// when the target rejected the plot without a transport fault.
type Target interface {
	Name() string
	SyncPlot(ctx context.Context, plot *models.Plot) (bool, error)
}

// Result reports per-target outcomes for one plot.
type Result struct {
	Successful []string
	Failed     []Failure
}

// Failure names one target that did not accept the plot.
type Failure struct {
	Target string
	Reason string
}

// Fanout dispatches one plot to a fixed ordered list of targets.
type Fanout struct {
	targets []Target
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Fanout)

func WithLogger(logger *slog.Logger) Option {
	return func(f *Fanout) {
		if logger != nil {
			f.logger = logger
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(f *Fanout) {
		f.metrics = m
	}
}

func New(targets []Target, opts ...Option) *Fanout {
	f := &Fanout{
		targets: targets,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

// SyncPlot invokes every target in order. A false result or an error from
// one target is recorded and the remaining targets still run. A panicking
// target is treated the same as an erroring one. SyncPlot never returns an
// error; the Result is the whole report.
func (f *Fanout) SyncPlot(ctx context.Context, plot *models.Plot) Result {
	var result Result
	for _, target := range f.targets {
		ok, err := f.invoke(ctx, target, plot)
		switch {
		case err != nil:
			result.Failed = append(result.Failed, Failure{Target: target.Name(), Reason: err.Error()})
			f.metrics.IncrementSyncFailure(target.Name())
			f.logger.Warn("plot sync target failed",
				"target", target.Name(), "plot_id", plot.ID, "error", err)
		case !ok:
			result.Failed = append(result.Failed, Failure{Target: target.Name(), Reason: "target reported failure"})
			f.metrics.IncrementSyncFailure(target.Name())
			f.logger.Warn("plot sync target rejected plot",
				"target", target.Name(), "plot_id", plot.ID)
		default:
			result.Successful = append(result.Successful, target.Name())
		}
	}
	f.logger.Info("plot sync complete",
		"plot_id", plot.ID,
		"succeeded", len(result.Successful),
		"failed", len(result.Failed))
	return result
}

func (f *Fanout) invoke(ctx context.Context, target Target, plot *models.Plot) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return target.SyncPlot(ctx, plot)
}
