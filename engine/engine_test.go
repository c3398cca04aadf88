package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadlessEngineTicksThenRenders(t *testing.T) {
	var (
		mu     sync.Mutex
		events []string
		deltas []float32
	)

	var e Engine
	e = NewEngine(
		WithTickRate(200),
		WithTickCallback(func(dt float32) {
			mu.Lock()
			events = append(events, "tick")
			deltas = append(deltas, dt)
			mu.Unlock()
		}),
		WithRenderCallback(func(dt float32) {
			mu.Lock()
			events = append(events, "render")
			n := len(events)
			mu.Unlock()
			if n >= 6 {
				e.Quit()
			}
		}),
	)

	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("engine did not stop")
	}

	mu.Lock()
	defer mu.Unlock()
	require.GreaterOrEqual(t, len(events), 6)
	for i := 0; i+1 < len(events); i += 2 {
		assert.Equal(t, "tick", events[i])
		assert.Equal(t, "render", events[i+1])
	}
	for _, dt := range deltas {
		assert.Greater(t, dt, float32(0))
		assert.LessOrEqual(t, dt, float32(0.1))
	}
	assert.Nil(t, e.Window())
}

func TestQuitIsIdempotent(t *testing.T) {
	e := NewEngine()
	e.Quit()
	e.Quit()

	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Quit")
	}
}

func TestRateFromFPS(t *testing.T) {
	assert.Equal(t, time.Second/60, rateFromFPS(0))
	assert.Equal(t, 8*time.Millisecond, rateFromFPS(125))
}
