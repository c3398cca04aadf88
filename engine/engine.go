package engine

import (
	"log/slog"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-breakout/engine/profiler"
	"github.com/Carmen-Shannon/oxy-breakout/engine/window"
)

// engine implements the Engine interface.
// A single frame goroutine runs the tick callback then the render callback, so
// simulation state touched by both needs no locking. The window's message loop
// stays on the calling (main) goroutine.
type engine struct {
	tickRateChannel chan time.Duration

	mu      sync.Mutex
	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once

	window window.Window

	profiler         *profiler.Profiler
	profilingEnabled bool

	frameRate      time.Duration
	maxDelta       float32
	tickCallback   func(deltaTime float32)
	renderCallback func(deltaTime float32)
}

// Engine is the main entry point for the engine.
// It owns the frame loop and the window's message loop.
type Engine interface {
	// Window returns the underlying window, or nil for a headless engine.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the frame rate in frames per second.
	//
	// Parameters:
	//   - fps: target frames per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called first in each frame.
	// Use this for input processing and simulation updates.
	//
	// Parameters:
	//   - callback: function receiving the wall-clock delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderCallback registers the function called after the tick callback in each frame.
	//
	// Parameters:
	//   - callback: function receiving the same delta time passed to the tick callback
	SetRenderCallback(callback func(deltaTime float32))

	// Run starts the frame loop and blocks until the window closes or Quit is called.
	// With a window, Run must be called from the main goroutine.
	Run()

	// Quit signals the frame loop to stop and closes the window's message loop.
	// Safe to call multiple times and from any goroutine.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
//
// Parameters:
//   - options: functional options for engine configuration (window, tick rate, profiling)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		frameRate:       time.Second / 60,
		maxDelta:        0.1,
	}

	for _, opt := range options {
		opt(e)
	}
	if e.profiler == nil {
		e.profiler = profiler.NewProfiler(time.Second, nil)
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Run() {
	e.mu.Lock()
	e.running = true
	e.mu.Unlock()

	e.wg.Add(1)
	go e.handleFrames()

	if e.window != nil {
		e.window.ProcessMessages()
		e.signalQuit()
	} else {
		<-e.quitChannel
	}
	e.wg.Wait()
}

func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel and stops the window's message loop.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.mu.Lock()
		e.running = false
		e.mu.Unlock()
		close(e.quitChannel)
		if e.window != nil {
			e.window.RequestClose()
		}
	})
}

// handleFrames runs the frame loop at the configured rate until quit.
// dt is wall-clock time since the previous frame, capped at maxDelta so a
// stall (window drag, debugger) does not tunnel the ball through bricks.
func (e *engine) handleFrames() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			slog.Error("[Engine] frame goroutine recovered from panic", "panic", r)
			e.signalQuit()
		}
	}()

	ticker := time.NewTicker(e.frameRate)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-e.quitChannel:
			return
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.frameRate = newRate
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(last).Seconds())
			last = now
			if e.maxDelta > 0 && dt > e.maxDelta {
				dt = e.maxDelta
			}

			if e.tickCallback != nil {
				e.tickCallback(dt)
			}
			if e.renderCallback != nil {
				e.renderCallback(dt)
			}
			if e.profilingEnabled {
				e.profiler.Tick()
			}
		}
	}
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetTickRate takes effect immediately when the engine is running.
func (e *engine) SetTickRate(fps float64) {
	newRate := rateFromFPS(fps)

	e.mu.Lock()
	running := e.running
	e.mu.Unlock()
	if !running {
		e.frameRate = newRate
		return
	}

	// Replace any pending update with the newest one.
	select {
	case e.tickRateChannel <- newRate:
	default:
		select {
		case <-e.tickRateChannel:
		default:
		}
		e.tickRateChannel <- newRate
	}
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

func rateFromFPS(fps float64) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Duration(float64(time.Second) / fps)
}
