package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStacksPanels(t *testing.T) {
	l := New(5)
	require.Len(t, l.Panels, 5)

	for i := 1; i < len(l.Panels); i++ {
		prev, cur := l.Panels[i-1].Body, l.Panels[i].Body
		assert.Greater(t, cur.Y, prev.Y+prev.H-1, "panel %d overlaps", i)
	}
	last := l.Panels[4].Body
	assert.LessOrEqual(t, last.Y+last.H, float64(ScreenHeight))
}

func TestHitTest(t *testing.T) {
	l := New(3)

	center := func(r Rect) (float64, float64) { return r.X + r.W/2, r.Y + r.H/2 }

	x, y := center(l.ScrapButton)
	assert.Equal(t, Hit{Kind: HitScrap}, l.HitTest(x, y))

	x, y = center(l.Panels[2].Button)
	assert.Equal(t, Hit{Kind: HitBuild, Producer: 2}, l.HitTest(x, y))

	// Panel body outside its button does nothing.
	b := l.Panels[1].Body
	assert.Equal(t, HitNone, l.HitTest(b.X+2, b.Y+2).Kind)
	assert.Equal(t, HitNone, l.HitTest(-1, -1).Kind)
}

func TestRectContainsIsHalfOpen(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 5, H: 5}
	assert.True(t, r.Contains(10, 10))
	assert.False(t, r.Contains(15, 12))
	assert.False(t, r.Contains(12, 15))
}
