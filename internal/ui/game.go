// Package ui is the ebiten front end. It draws the latest snapshot pushed by
// the simulation and turns mouse clicks into commands.
package ui

import (
	"image/color"
	"log/slog"
	"sync"

	"scraps/internal/ui/input"
	"scraps/internal/ui/layout"
	"scraps/internal/view"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	backgroundColor = color.RGBA{20, 20, 30, 255}
	panelColor      = color.RGBA{40, 48, 64, 255}
	buttonColor     = color.RGBA{70, 130, 180, 255}
	disabledColor   = color.RGBA{70, 70, 80, 255}
	strokeColor     = color.RGBA{240, 240, 240, 255}
	textColor       = color.RGBA{240, 240, 240, 255}
	mutedTextColor  = color.RGBA{150, 160, 175, 255}
)

// Game implements ebiten.Game and view.Renderer.
type Game struct {
	exec   input.Executor
	layout layout.Layout
	logger *slog.Logger

	mu   sync.Mutex
	snap view.Snapshot
}

func New(exec input.Executor, initial view.Snapshot, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	return &Game{
		exec:   exec,
		layout: layout.New(len(initial.Producers)),
		logger: logger,
		snap:   initial,
	}
}

// Render stores the snapshot for the next frame. Called from the simulation
// goroutine.
func (g *Game) Render(s view.Snapshot) {
	g.mu.Lock()
	g.snap = s
	g.mu.Unlock()
}

func (g *Game) snapshot() view.Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snap
}

func (g *Game) Update() error {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return nil
	}
	mx, my := ebiten.CursorPosition()
	hit := g.layout.HitTest(float64(mx), float64(my))
	input.Send(g.exec, input.CommandFor(hit, g.snapshot(), uuid.NewString), g.logger)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	snap := g.snapshot()
	face := basicfont.Face7x13

	b := g.layout.ScrapButton
	drawButton(screen, b, "Produce scrap", true)
	text.Draw(screen, "Scraps: "+snap.Scraps, face, int(b.X+b.W)+16, int(b.Y)+16, textColor)
	text.Draw(screen, "Per second: "+snap.Rate, face, int(b.X+b.W)+16, int(b.Y)+34, mutedTextColor)

	for i, p := range snap.Producers {
		if i >= len(g.layout.Panels) {
			break
		}
		panel := g.layout.Panels[i]
		r := panel.Body
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), panelColor, false)
		text.Draw(screen, p.Name+": "+p.Quantity+" ("+p.Rate+"/s)", face, int(r.X)+10, int(r.Y)+24, textColor)
		text.Draw(screen, p.Info, face, int(r.X)+10, int(r.Y)+44, mutedTextColor)
		drawButton(screen, panel.Button, p.ButtonLabel(), p.Affordable)
	}
}

func drawButton(screen *ebiten.Image, r layout.Rect, label string, enabled bool) {
	bg := buttonColor
	fg := textColor
	if !enabled {
		bg = disabledColor
		fg = mutedTextColor
	}
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), bg, false)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, strokeColor, false)
	textX := int(r.X + (r.W-float64(len(label)*7))/2)
	textY := int(r.Y + r.H/2 + 4)
	text.Draw(screen, label, basicfont.Face7x13, textX, textY, fg)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return layout.ScreenWidth, layout.ScreenHeight
}
