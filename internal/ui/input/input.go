// Package input maps clicks on the layout to player commands.
package input

import (
	"log/slog"

	"scraps/internal/commands"
	"scraps/internal/events"
	"scraps/internal/ui/layout"
	"scraps/internal/view"
)

// CommandFor returns the command a click on hit should send, or nil when the
// click does nothing. Build buttons of unaffordable producers are disabled.
func CommandFor(hit layout.Hit, snap view.Snapshot, newID func() string) commands.Command {
	switch hit.Kind {
	case layout.HitScrap:
		return commands.Click{ID: newID()}
	case layout.HitBuild:
		if hit.Producer < 0 || hit.Producer >= len(snap.Producers) {
			return nil
		}
		if !snap.Producers[hit.Producer].Affordable {
			return nil
		}
		return &commands.Purchase{ID: newID(), ProducerID: hit.Producer}
	default:
		return nil
	}
}

// Executor runs player commands against the simulation.
type Executor interface {
	Execute(cmd commands.Command) ([]events.Event, error)
}

// Send executes cmd and logs a failure. It reports whether cmd ran.
func Send(exec Executor, cmd commands.Command, logger *slog.Logger) bool {
	if cmd == nil {
		return false
	}
	if _, err := exec.Execute(cmd); err != nil {
		logger.Error("command failed", "command", cmd.Name(), "id", cmd.CommandID(), "err", err)
		return false
	}
	return true
}
