package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClockNow(t *testing.T) {
	clk := RealClock{}
	assert.False(t, clk.Now().IsZero(), "expected non-zero time")
}

func TestFakeClockAdvance(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clk := NewFakeClock(start)

	assert.True(t, clk.Now().Equal(start))

	clk.Advance(1500 * time.Millisecond)
	assert.True(t, clk.Now().Equal(start.Add(1500*time.Millisecond)), "got %v", clk.Now())
}
