package audio

import "github.com/faiface/beep"

// PlayerBuilderOption is a functional option for configuring a Player.
type PlayerBuilderOption func(*player)

// WithSampleRate sets the output sample rate. Sounds recorded at other rates
// are resampled on load.
//
// Parameters:
//   - rate: samples per second (default 44100)
//
// Returns:
//   - PlayerBuilderOption: option function to apply
func WithSampleRate(rate int) PlayerBuilderOption {
	return func(p *player) {
		if rate > 0 {
			p.sampleRate = beep.SampleRate(rate)
		}
	}
}

// WithVolume sets the playback gain as a power-of-two exponent: 0 leaves
// sounds unchanged, -1 halves the amplitude.
//
// Parameters:
//   - volume: the gain exponent
//
// Returns:
//   - PlayerBuilderOption: option function to apply
func WithVolume(volume float64) PlayerBuilderOption {
	return func(p *player) {
		p.volume = volume
	}
}

// WithMuted silences playback while keeping dispatch running.
//
// Parameters:
//   - muted: true to silence output
//
// Returns:
//   - PlayerBuilderOption: option function to apply
func WithMuted(muted bool) PlayerBuilderOption {
	return func(p *player) {
		p.muted = muted
	}
}

// WithWorkers sets the number of playback dispatch workers.
//
// Parameters:
//   - n: number of workers (default 2)
//
// Returns:
//   - PlayerBuilderOption: option function to apply
func WithWorkers(n int) PlayerBuilderOption {
	return func(p *player) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithSpeaker controls whether the system speaker is opened. Without it sounds
// go to the output set by WithOutput, or nowhere.
//
// Parameters:
//   - enabled: false to skip speaker initialisation
//
// Returns:
//   - PlayerBuilderOption: option function to apply
func WithSpeaker(enabled bool) PlayerBuilderOption {
	return func(p *player) {
		p.useSpeaker = enabled
	}
}

// WithOutput sets the function that receives each started sound.
//
// Parameters:
//   - output: the sink for playback streamers
//
// Returns:
//   - PlayerBuilderOption: option function to apply
func WithOutput(output func(beep.Streamer)) PlayerBuilderOption {
	return func(p *player) {
		p.output = output
	}
}
