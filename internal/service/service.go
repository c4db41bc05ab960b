package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"scraps/internal/clock"
	"scraps/internal/commands"
	"scraps/internal/config"
	"scraps/internal/domain"
	"scraps/internal/events"
	"scraps/internal/view"
)

var ErrUnknownCommand = errors.New("unknown command")

// GameService owns the simulation state. Every mutation and read goes
// through mu, so the ticker and UI callbacks never interleave.
type GameService struct {
	mu          sync.Mutex
	cfg         config.Config
	clk         clock.Clock
	st          domain.State
	lastTickAt  time.Time
	nextEventID uint64
	bus         *events.Dispatcher
}

func NewGameService(cfg config.Config, clk clock.Clock, startTime time.Time) (*GameService, error) {
	producers, err := domain.NewProducers(cfg.Producers)
	if err != nil {
		return nil, err
	}
	return &GameService{
		cfg:        cfg,
		clk:        clk,
		st:         domain.NewState(producers),
		lastTickAt: startTime,
		bus:        events.NewDispatcher(),
	}, nil
}

// Events exposes the dispatcher listeners subscribe to.
func (s *GameService) Events() *events.Dispatcher {
	return s.bus
}

func (s *GameService) GetState() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.Clone()
}

// Snapshot formats the current state for a renderer.
func (s *GameService) Snapshot() view.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return view.Build(s.st, s.cfg.Decimals)
}

// Tick runs one production pass over dt.
func (s *GameService) Tick(dt time.Duration) events.Event {
	return s.tick("", dt)
}

// Advance ticks over the wall time elapsed since the previous tick and
// returns it.
func (s *GameService) Advance() time.Duration {
	s.mu.Lock()
	elapsed := s.clk.Now().Sub(s.lastTickAt)
	if elapsed <= 0 {
		s.mu.Unlock()
		return 0
	}
	ev := s.tickLocked("", elapsed)
	s.mu.Unlock()

	s.bus.Dispatch(ev)
	return elapsed
}

func (s *GameService) tick(commandID string, dt time.Duration) events.Event {
	s.mu.Lock()
	ev := s.tickLocked(commandID, dt)
	s.mu.Unlock()

	s.bus.Dispatch(ev)
	return ev
}

// tickLocked must be called with mu held.
func (s *GameService) tickLocked(commandID string, dt time.Duration) events.Event {
	s.st.Tick(dt)
	s.lastTickAt = s.lastTickAt.Add(dt)
	return s.newEvent(commandID, events.EventTypeTicked, events.TickedData{
		Elapsed: dt,
		Scraps:  s.st.Scraps,
		Rate:    s.st.TotalRate(),
	})
}

func (s *GameService) Click() {
	s.click("")
}

// Purchase buys one unit of producer id. An unaffordable purchase is a
// no-op that reports false.
func (s *GameService) Purchase(id int) (bool, error) {
	ok, _, err := s.purchase("", id)
	return ok, err
}

// Execute applies cmd and returns the events it produced, after they have
// been dispatched.
func (s *GameService) Execute(cmd commands.Command) ([]events.Event, error) {
	switch c := cmd.(type) {
	case *commands.SyncState:
		c.Snapshot = s.Snapshot()
		return nil, nil
	case commands.Click:
		return []events.Event{s.click(c.ID)}, nil
	case *commands.Purchase:
		ok, ev, err := s.purchase(c.ID, c.ProducerID)
		if err != nil {
			return nil, err
		}
		c.Purchased = ok
		return []events.Event{ev}, nil
	case commands.Tick:
		return []events.Event{s.tick(c.ID, c.Elapsed)}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, cmd.Name())
	}
}

func (s *GameService) click(commandID string) events.Event {
	s.mu.Lock()
	s.st.Click()
	ev := s.newEvent(commandID, events.EventTypeScrapClicked, events.ScrapClickedData{Scraps: s.st.Scraps})
	s.mu.Unlock()

	s.bus.Dispatch(ev)
	return ev
}

func (s *GameService) purchase(commandID string, id int) (bool, events.Event, error) {
	s.mu.Lock()
	before := s.st.Scraps
	ok, err := s.st.Purchase(id)
	if err != nil {
		s.mu.Unlock()
		return false, events.Event{}, err
	}
	p := s.st.Producers[id]
	var ev events.Event
	if ok {
		ev = s.newEvent(commandID, events.EventTypeProducerPurchased, events.ProducerPurchasedData{
			ProducerID: id,
			Name:       p.Name,
			Paid:       before - s.st.Scraps,
			Quantity:   p.Quantity,
			NextCost:   p.Cost,
		})
	} else {
		ev = s.newEvent(commandID, events.EventTypePurchaseRejected, events.PurchaseRejectedData{
			ProducerID: id,
			Cost:       p.Cost,
			Scraps:     s.st.Scraps,
		})
	}
	s.mu.Unlock()

	s.bus.Dispatch(ev)
	return ok, ev, nil
}

// newEvent must be called with mu held.
func (s *GameService) newEvent(commandID string, t events.EventType, data any) events.Event {
	s.nextEventID++
	return events.New(s.nextEventID, s.clk.Now(), commandID, t, data)
}
