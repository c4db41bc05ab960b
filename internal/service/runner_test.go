package service

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"scraps/internal/clock"
	"scraps/internal/config"
	"scraps/internal/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunnerRendersUntilCancelled(t *testing.T) {
	svc, err := NewGameService(config.Default(), clock.RealClock{}, time.Now())
	require.NoError(t, err)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	ctx, cancel := context.WithCancel(context.Background())
	rendered := make(chan view.Snapshot, 16)
	r := NewRunner(svc, time.Millisecond, view.RendererFunc(func(s view.Snapshot) {
		select {
		case rendered <- s:
		default:
		}
	}), logger)

	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()

	for i := 0; i < 3; i++ {
		select {
		case snap := <-rendered:
			assert.Len(t, snap.Producers, 5)
		case <-time.After(2 * time.Second):
			t.Fatal("no snapshot rendered")
		}
	}
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not stop")
	}
	assert.Contains(t, logs.String(), "simulation started")
	assert.Contains(t, logs.String(), "simulation stopped")
}
