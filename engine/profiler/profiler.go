package profiler

import (
	"log/slog"
	"runtime"
	"time"
)

// Profiler tracks frame rate, frame time and memory statistics and logs them
// at a fixed interval.
type Profiler struct {
	frameCount     int
	worstFrame     time.Duration
	lastFrame      time.Time
	lastReport     time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	logger         *slog.Logger
}

// NewProfiler creates a new Profiler that reports every interval.
// Intervals <= 0 default to 1 second.
//
// Parameters:
//   - interval: time between reports
//   - logger: destination for reports, or nil for slog.Default()
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(interval time.Duration, logger *slog.Logger) *Profiler {
	if interval <= 0 {
		interval = time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	now := time.Now()
	return &Profiler{
		lastFrame:      now,
		lastReport:     now,
		updateInterval: interval,
		logger:         logger,
	}
}

// Tick should be called once per frame.
// Logs FPS, worst frame time, heap usage, allocation rate and GC pauses when
// the interval has elapsed.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	now := time.Now()
	p.frameCount++
	if ft := now.Sub(p.lastFrame); ft > p.worstFrame {
		p.worstFrame = ft
	}
	p.lastFrame = now

	elapsed := now.Sub(p.lastReport)
	if elapsed < p.updateInterval {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc

	gcCount := p.memStats.NumGC
	var maxPause time.Duration
	if gcCount > 0 {
		// PauseNs is a circular buffer of the last 256 pauses.
		start := p.lastGCCount
		if gcCount-start > 256 {
			start = gcCount - 256
		}
		for i := start; i < gcCount; i++ {
			if d := time.Duration(p.memStats.PauseNs[i%256]); d > maxPause {
				maxPause = d
			}
		}
	}

	p.logger.Info("[Profiler] frame stats",
		"fps", float64(p.frameCount)/elapsed.Seconds(),
		"worst_frame", p.worstFrame,
		"heap_mb", float64(p.memStats.Alloc)/1024/1024,
		"alloc_mb_s", float64(allocDelta)/1024/1024/elapsed.Seconds(),
		"gc", gcCount,
		"gc_max_pause", maxPause,
		"sys_mb", float64(p.memStats.Sys)/1024/1024,
	)

	p.frameCount = 0
	p.worstFrame = 0
	p.lastReport = now
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
