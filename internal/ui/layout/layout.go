// Package layout places the scrap button and producer panels on screen.
package layout

const (
	ScreenWidth  = 640
	ScreenHeight = 480

	margin       = 16
	headerHeight = 96
	panelHeight  = 64
	panelGap     = 8
	buttonWidth  = 180
	buttonHeight = 28
)

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

type Panel struct {
	Body   Rect
	Button Rect
}

type Layout struct {
	ScrapButton Rect
	Panels      []Panel
}

// New lays out n producer panels stacked under the header.
func New(n int) Layout {
	l := Layout{
		ScrapButton: Rect{X: margin, Y: margin, W: buttonWidth, H: 40},
		Panels:      make([]Panel, n),
	}
	for i := range l.Panels {
		y := float64(headerHeight + i*(panelHeight+panelGap))
		body := Rect{X: margin, Y: y, W: ScreenWidth - 2*margin, H: panelHeight}
		l.Panels[i] = Panel{
			Body: body,
			Button: Rect{
				X: body.X + body.W - buttonWidth - 8,
				Y: body.Y + (panelHeight-buttonHeight)/2,
				W: buttonWidth,
				H: buttonHeight,
			},
		}
	}
	return l
}

type HitKind int

const (
	HitNone HitKind = iota
	HitScrap
	HitBuild
)

type Hit struct {
	Kind     HitKind
	Producer int
}

// HitTest reports what a click at (x, y) lands on.
func (l Layout) HitTest(x, y float64) Hit {
	if l.ScrapButton.Contains(x, y) {
		return Hit{Kind: HitScrap}
	}
	for i, p := range l.Panels {
		if p.Button.Contains(x, y) {
			return Hit{Kind: HitBuild, Producer: i}
		}
	}
	return Hit{Kind: HitNone}
}
