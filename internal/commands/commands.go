package commands

import (
	"time"

	"scraps/internal/view"
)

// Command represents a typed command for the GameService executor.
type Command interface {
	CommandID() string
	Name() string
}

// SyncState requests a state snapshot without changing game state and
// exposes it.
type SyncState struct {
	ID       string
	Snapshot view.Snapshot
}

func (c *SyncState) CommandID() string {
	return c.ID
}

func (c *SyncState) Name() string {
	return "SyncState"
}

// Click adds one scrap to the pool.
type Click struct {
	ID string
}

func (c Click) CommandID() string {
	return c.ID
}

func (c Click) Name() string {
	return "Click"
}

// Purchase buys one unit of a producer and exposes whether it went through.
type Purchase struct {
	ID         string
	ProducerID int
	Purchased  bool
}

func (c *Purchase) CommandID() string {
	return c.ID
}

func (c *Purchase) Name() string {
	return "Purchase"
}

// Tick runs one production pass over Elapsed.
type Tick struct {
	ID      string
	Elapsed time.Duration
}

func (c Tick) CommandID() string {
	return c.ID
}

func (c Tick) Name() string {
	return "Tick"
}
