package view

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"scraps/internal/clock"
	"scraps/internal/config"
	"scraps/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testState(t *testing.T) domain.State {
	t.Helper()
	producers, err := domain.NewProducers(config.Default().Producers)
	require.NoError(t, err)
	return domain.NewState(producers)
}

func TestBuild(t *testing.T) {
	st := testState(t)
	st.Scraps = 12.6
	st.Producers[0].Quantity = 3
	st.Producers[1].Quantity = 2

	snap := Build(st, 0)

	assert.Equal(t, "13", snap.Scraps)
	assert.Equal(t, "5", snap.Rate)
	require.Len(t, snap.Producers, 5)

	alpha := snap.Producers[0]
	assert.Equal(t, "Replicant Alpha", alpha.Name)
	assert.Equal(t, "Build 1 scrap / s", alpha.Info)
	assert.Equal(t, "3", alpha.Quantity)
	assert.Equal(t, "2", alpha.Rate, "fed by two Betas")
	assert.Equal(t, "10", alpha.Cost)
	assert.True(t, alpha.Affordable)
	assert.Equal(t, "Build (10 scraps)", alpha.ButtonLabel())

	beta := snap.Producers[1]
	assert.Equal(t, "Build 1 Replicant Alpha / s", beta.Info)
	assert.Equal(t, "0", beta.Rate)
	assert.False(t, beta.Affordable)
}

func TestBuildDecimals(t *testing.T) {
	st := testState(t)
	st.Scraps = 1.256

	snap := Build(st, 2)
	assert.Equal(t, "1.26", snap.Scraps)
	assert.Equal(t, "0.00", snap.Rate)
	assert.Equal(t, "150", snap.Producers[1].Cost)
}

func TestLogRendererThrottles(t *testing.T) {
	var buf bytes.Buffer
	clk := clock.NewFakeClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	r := &LogRenderer{
		Logger: slog.New(slog.NewTextHandler(&buf, nil)),
		Clock:  clk,
		Every:  time.Second,
	}
	snap := Build(testState(t), 0)

	r.Render(snap)
	clk.Advance(500 * time.Millisecond)
	r.Render(snap)
	clk.Advance(500 * time.Millisecond)
	r.Render(snap)

	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("msg=tick")))
	assert.Contains(t, buf.String(), "Replicant Alpha")
}
