package domain

import (
	"errors"
	"fmt"
	"math"
	"time"

	"scraps/internal/config"
)

var ErrInvalidTarget = errors.New("producer target must be an earlier producer")

// Target is the id of the producer receiving output, or RootTarget for the
// scrap pool.
type Target int

const RootTarget Target = -1

func (t Target) IsRoot() bool {
	return t == RootTarget
}

type Producer struct {
	ID             int
	Name           string
	Kind           config.Kind
	Quantity       float64
	UnitProduction float64
	Cost           float64
	GrowthFactor   float64
	Target         Target
}

// Rate is the per-second output of all owned units.
func (p Producer) Rate() float64 {
	return p.Quantity * p.UnitProduction
}

// Output is the amount produced over dt of wall time.
func (p Producer) Output(dt time.Duration) float64 {
	return p.Rate() * float64(dt) / float64(time.Second)
}

func (p Producer) CanAfford(pool float64) bool {
	return p.Cost <= pool
}

// NextCost rounds up after every step so costs compound on the rounded value.
func NextCost(cost, growth float64) float64 {
	return math.Ceil(cost * growth)
}

// TargetFor returns the target of the producer at index i. Every producer
// after the first feeds its predecessor; the first one would too when it is
// a replicant, but it has no predecessor.
func TargetFor(i int, kind config.Kind) (Target, error) {
	if i > 0 || kind == config.KindReplicant {
		if i == 0 {
			return 0, fmt.Errorf("%w: replicant at position 0", ErrInvalidTarget)
		}
		return Target(i - 1), nil
	}
	return RootTarget, nil
}

// NewProducers builds the chain from its definitions with zero quantities.
func NewProducers(defs []config.ProducerDef) ([]Producer, error) {
	out := make([]Producer, 0, len(defs))
	for i, def := range defs {
		target, err := TargetFor(i, def.Kind)
		if err != nil {
			return nil, fmt.Errorf("producer %q: %w", def.Name, err)
		}
		out = append(out, Producer{
			ID:             i,
			Name:           def.Name,
			Kind:           def.Kind,
			UnitProduction: def.Production,
			Cost:           def.Cost,
			GrowthFactor:   def.Growth,
			Target:         target,
		})
	}
	return out, nil
}
