package game

// Sound keys emitted by the simulation.
const (
	SoundBleepBrick  = "audio_bleep_brick"
	SoundSolid       = "audio_solid"
	SoundBleepPaddle = "audio_bleep_paddle"
	SoundPowerUp     = "audio_powerup"
)

// SoundSink receives fire-and-forget sound events.
type SoundSink interface {
	// Play requests playback of the sound registered under key. It must not
	// block the caller.
	//
	// Parameters:
	//   - key: the sound key
	Play(key string)
}

type nopSink struct{}

func (nopSink) Play(string) {}

// SoundFunc adapts a plain function to a SoundSink.
type SoundFunc func(key string)

func (f SoundFunc) Play(key string) { f(key) }
