// Package view turns simulation state into the read-only numbers a renderer
// draws each tick.
package view

import (
	"fmt"

	"scraps/internal/display"
	"scraps/internal/domain"
)

type ProducerView struct {
	ID         int
	Name       string
	Info       string
	Quantity   string
	Rate       string
	Cost       string
	Affordable bool
}

// ButtonLabel is the text of the producer's build button.
func (p ProducerView) ButtonLabel() string {
	return fmt.Sprintf("Build (%s scraps)", p.Cost)
}

type Snapshot struct {
	Scraps    string
	Rate      string
	Producers []ProducerView
}

// Renderer receives a snapshot after every tick.
type Renderer interface {
	Render(s Snapshot)
}

type RendererFunc func(s Snapshot)

func (f RendererFunc) Render(s Snapshot) {
	f(s)
}

// Build formats st with the given precision.
func Build(st domain.State, decimals int) Snapshot {
	snap := Snapshot{
		Scraps:    display.Number(st.Scraps, decimals),
		Rate:      display.Number(st.TotalRate(), decimals),
		Producers: make([]ProducerView, 0, len(st.Producers)),
	}
	for _, p := range st.Producers {
		snap.Producers = append(snap.Producers, ProducerView{
			ID:         p.ID,
			Name:       p.Name,
			Info:       infoLine(st, p),
			Quantity:   display.Number(p.Quantity, decimals),
			Rate:       display.Number(st.OwnRate(p.ID), decimals),
			Cost:       display.Number(p.Cost, 0),
			Affordable: p.CanAfford(st.Scraps),
		})
	}
	return snap
}

func infoLine(st domain.State, p domain.Producer) string {
	if p.Target.IsRoot() {
		return "Build 1 scrap / s"
	}
	if p.Target < 0 || int(p.Target) >= len(st.Producers) {
		return ""
	}
	return fmt.Sprintf("Build 1 %s / s", st.Producers[p.Target].Name)
}
