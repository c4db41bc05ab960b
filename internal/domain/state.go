package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrUnknownProducer = errors.New("unknown producer")

// State holds the current in-memory game state.
type State struct {
	Scraps    float64
	Producers []Producer
}

func NewState(producers []Producer) State {
	return State{Producers: producers}
}

// Clone returns a copy that shares nothing with s.
func (s State) Clone() State {
	out := s
	out.Producers = append([]Producer(nil), s.Producers...)
	return out
}

func (s *State) producer(id int) (*Producer, error) {
	if id < 0 || id >= len(s.Producers) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownProducer, id)
	}
	return &s.Producers[id], nil
}

// Click adds exactly one scrap.
func (s *State) Click() {
	s.Scraps++
}

// Produce credits the output of producer id over dt to its target.
func (s *State) Produce(id int, dt time.Duration) error {
	p, err := s.producer(id)
	if err != nil {
		return err
	}
	if !s.feedsForward(id) {
		return fmt.Errorf("%w: producer %d targets %d", ErrInvalidTarget, id, p.Target)
	}
	s.credit(id, dt)
	return nil
}

// credit adds the output of producer id to its target. The target must
// already be known to feed forward.
func (s *State) credit(id int, dt time.Duration) {
	p := s.Producers[id]
	amount := p.Output(dt)
	if p.Target.IsRoot() {
		s.Scraps += amount
		return
	}
	s.Producers[p.Target].Quantity += amount
}

// feedsForward reports whether producer id targets the pool or a producer
// with a lower id.
func (s *State) feedsForward(id int) bool {
	t := s.Producers[id].Target
	return t.IsRoot() || (t >= 0 && int(t) < id)
}

// Tick runs one production pass over every producer in id order. Producers
// whose target breaks the chain order produce nothing.
func (s *State) Tick(dt time.Duration) {
	for i := range s.Producers {
		if s.feedsForward(i) {
			s.credit(i, dt)
		}
	}
}

// OwnRate is the per-second amount fed into producer id by the producers
// targeting it.
func (s *State) OwnRate(id int) float64 {
	var rate float64
	for _, p := range s.Producers {
		if !p.Target.IsRoot() && int(p.Target) == id {
			rate += p.Rate()
		}
	}
	return rate
}

// TotalRate sums the rate of every producer, whatever it targets.
func (s *State) TotalRate() float64 {
	var rate float64
	for _, p := range s.Producers {
		rate += p.Rate()
	}
	return rate
}

func (s *State) CanAfford(id int) (bool, error) {
	p, err := s.producer(id)
	if err != nil {
		return false, err
	}
	return p.CanAfford(s.Scraps), nil
}

// Purchase buys one unit of producer id. It reports false and changes
// nothing when the pool cannot cover the cost.
func (s *State) Purchase(id int) (bool, error) {
	p, err := s.producer(id)
	if err != nil {
		return false, err
	}
	if !p.CanAfford(s.Scraps) {
		return false, nil
	}
	s.Scraps -= p.Cost
	p.Quantity++
	p.Cost = NextCost(p.Cost, p.GrowthFactor)
	return true, nil
}
