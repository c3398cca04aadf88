// Package audio plays short sound effects by key. Sounds are decoded once into
// memory and playback is dispatched on a worker pool so callers never block.
package audio

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// resampleQuality is the beep resampler quality used when a file's sample rate
// differs from the output rate.
const resampleQuality = 4

// Player loads and plays sound effects.
type Player interface {
	// Load decodes the WAV file at path and registers it under key,
	// replacing any previous sound with that key.
	//
	// Parameters:
	//   - key: the sound key
	//   - path: the WAV file
	//
	// Returns:
	//   - error: error if the file cannot be read or decoded
	Load(key, path string) error

	// LoadReader decodes WAV data from r and registers it under key.
	//
	// Parameters:
	//   - key: the sound key
	//   - r: the WAV data
	//
	// Returns:
	//   - error: error if the data cannot be decoded
	LoadReader(key string, r io.Reader) error

	// Play starts playback of the sound registered under key and returns
	// immediately. Unknown keys are logged and dropped.
	//
	// Parameters:
	//   - key: the sound key
	Play(key string)

	// Keys returns the registered sound keys.
	//
	// Returns:
	//   - []string: the keys, in no particular order
	Keys() []string

	// Close waits for pending playback dispatches and silences the output.
	//
	// Returns:
	//   - error: always nil; present for io.Closer compatibility
	Close() error
}

type player struct {
	mu      sync.RWMutex
	buffers map[string]*beep.Buffer

	sampleRate beep.SampleRate
	volume     float64
	muted      bool

	workers    int
	pool       worker.DynamicWorkerPool
	taskID     atomic.Int64
	useSpeaker bool
	output     func(beep.Streamer)

	closeOnce sync.Once
}

var _ Player = &player{}

// NewPlayer creates a Player. Unless WithSpeaker(false) is given the system
// speaker is initialised at the configured sample rate.
//
// Parameters:
//   - options: functional options to configure the player
//
// Returns:
//   - Player: the player
//   - error: error if the speaker cannot be initialised
func NewPlayer(options ...PlayerBuilderOption) (Player, error) {
	p := &player{
		buffers:    make(map[string]*beep.Buffer),
		sampleRate: 44100,
		workers:    2,
		useSpeaker: true,
	}
	for _, opt := range options {
		opt(p)
	}

	if p.useSpeaker {
		if err := speaker.Init(p.sampleRate, p.sampleRate.N(time.Second/10)); err != nil {
			return nil, fmt.Errorf("failed to initialize speaker: %w", err)
		}
		if p.output == nil {
			p.output = func(s beep.Streamer) { speaker.Play(s) }
		}
	}
	if p.output == nil {
		p.output = func(beep.Streamer) {}
	}

	p.pool = worker.NewDynamicWorkerPool(p.workers, 256, 1*time.Second)
	return p, nil
}

func (p *player) Load(key, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open sound %s: %w", key, err)
	}
	defer f.Close()

	if err := p.LoadReader(key, f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func (p *player) LoadReader(key string, r io.Reader) error {
	streamer, format, err := wav.Decode(r)
	if err != nil {
		return fmt.Errorf("failed to decode sound %s: %w", key, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != p.sampleRate {
		src = beep.Resample(resampleQuality, format.SampleRate, p.sampleRate, streamer)
		format.SampleRate = p.sampleRate
	}

	buf := beep.NewBuffer(format)
	buf.Append(src)

	p.mu.Lock()
	p.buffers[key] = buf
	p.mu.Unlock()

	slog.Debug("[Audio] loaded sound", "key", key, "samples", buf.Len())
	return nil
}

func (p *player) Play(key string) {
	p.mu.RLock()
	buf, ok := p.buffers[key]
	p.mu.RUnlock()
	if !ok {
		slog.Warn("[Audio] unknown sound", "key", key)
		return
	}

	p.pool.SubmitTask(worker.Task{
		ID: int(p.taskID.Add(1)),
		Do: func() (any, error) {
			p.output(&effects.Volume{
				Streamer: buf.Streamer(0, buf.Len()),
				Base:     2,
				Volume:   p.volume,
				Silent:   p.muted,
			})
			return nil, nil
		},
	})
}

func (p *player) Keys() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	keys := make([]string, 0, len(p.buffers))
	for k := range p.buffers {
		keys = append(keys, k)
	}
	return keys
}

func (p *player) Close() error {
	p.closeOnce.Do(func() {
		p.pool.Wait()
		if p.useSpeaker {
			speaker.Clear()
		}
	})
	return nil
}
