package main

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-breakout/common"
	"github.com/Carmen-Shannon/oxy-breakout/engine/window"
	"github.com/Carmen-Shannon/oxy-breakout/game"
)

// inputCollector turns window callbacks into per-frame ControllerStates.
// Callbacks arrive on the main thread while Snapshot runs on the frame goroutine.
type inputCollector struct {
	mu sync.Mutex

	held map[uint32]bool

	haveCursor bool
	lastX      float32
	mouseDelta float32

	launch, next, prev bool
}

func newInputCollector() *inputCollector {
	return &inputCollector{held: make(map[uint32]bool)}
}

// attach registers the collector's callbacks on w. quit is called on Escape.
func (in *inputCollector) attach(w window.Window, quit func()) {
	w.SetKeyDownCallback(func(key uint32) {
		if key == common.KeyEsc {
			quit()
			return
		}
		in.keyDown(key)
	})
	w.SetKeyUpCallback(in.keyUp)
	w.SetMouseMoveCallback(in.mouseMove)
	w.SetMouseButtonCallback(in.mouseButton)
}

func (in *inputCollector) keyDown(key uint32) {
	in.mu.Lock()
	defer in.mu.Unlock()

	// Key repeat reports held keys again; only the first press latches.
	if in.held[key] {
		return
	}
	in.held[key] = true

	switch key {
	case common.KeyW, common.KeyUp:
		in.next = true
	case common.KeyS, common.KeyDown:
		in.prev = true
	}
}

// keyUp releases a held key. Launch fires on release of Space or Enter.
func (in *inputCollector) keyUp(key uint32) {
	in.mu.Lock()
	defer in.mu.Unlock()

	if !in.held[key] {
		return
	}
	delete(in.held, key)
	if key == common.KeySpace || key == common.KeyEnter {
		in.launch = true
	}
}

func (in *inputCollector) mouseMove(x, _ float32) {
	in.mu.Lock()
	defer in.mu.Unlock()

	if in.haveCursor {
		in.mouseDelta += x - in.lastX
	}
	in.lastX = x
	in.haveCursor = true
}

// mouseButton fires launch when the left button is released.
func (in *inputCollector) mouseButton(button window.MouseButton, pressed bool) {
	if button != window.MouseButtonLeft || pressed {
		return
	}
	in.mu.Lock()
	defer in.mu.Unlock()
	in.launch = true
}

// Snapshot returns the input since the previous call and clears the one-shot
// latches and the accumulated mouse delta.
func (in *inputCollector) Snapshot() game.ControllerState {
	in.mu.Lock()
	defer in.mu.Unlock()

	var move float32
	if in.held[common.KeyA] || in.held[common.KeyLeft] {
		move--
	}
	if in.held[common.KeyD] || in.held[common.KeyRight] {
		move++
	}

	s := game.ControllerState{
		Move:       move,
		MouseDelta: in.mouseDelta,
		Launch:     in.launch,
		NextLevel:  in.next,
		PrevLevel:  in.prev,
	}
	in.mouseDelta = 0
	in.launch, in.next, in.prev = false, false, false
	return s
}
