package view

import (
	"log/slog"
	"time"

	"scraps/internal/clock"
)

// LogRenderer logs the snapshot at most once per Every. It stands in for a
// window when running headless.
type LogRenderer struct {
	Logger *slog.Logger
	Clock  clock.Clock
	Every  time.Duration

	last time.Time
}

func (r *LogRenderer) Render(s Snapshot) {
	now := r.Clock.Now()
	if !r.last.IsZero() && now.Sub(r.last) < r.Every {
		return
	}
	r.last = now

	attrs := []any{"scraps", s.Scraps, "rate", s.Rate}
	for _, p := range s.Producers {
		attrs = append(attrs, slog.Group(p.Name,
			"quantity", p.Quantity,
			"rate", p.Rate,
			"cost", p.Cost,
			"affordable", p.Affordable,
		))
	}
	r.Logger.Info("tick", attrs...)
}
