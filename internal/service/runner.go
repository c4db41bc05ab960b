package service

import (
	"context"
	"log/slog"
	"time"

	"scraps/internal/view"
)

// Runner drives a GameService on a fixed interval and pushes a snapshot to
// the renderer after each tick.
type Runner struct {
	svc      *GameService
	interval time.Duration
	renderer view.Renderer
	logger   *slog.Logger
	ticks    uint64
}

func NewRunner(svc *GameService, interval time.Duration, renderer view.Renderer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		svc:      svc,
		interval: interval,
		renderer: renderer,
		logger:   logger,
	}
}

// Run blocks until ctx is done. Ticks never overlap.
func (r *Runner) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("simulation started", "interval", r.interval)
	r.step()
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("simulation stopped", "ticks", r.ticks)
			return
		case <-ticker.C:
			r.step()
		}
	}
}

func (r *Runner) step() {
	r.svc.Advance()
	r.ticks++
	if r.renderer != nil {
		r.renderer.Render(r.svc.Snapshot())
	}
}
