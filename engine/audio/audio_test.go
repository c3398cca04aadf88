package audio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSilence writes a WAV file holding n frames of silence at rate.
func writeSilence(t *testing.T, rate, n int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bleep.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	format := beep.Format{SampleRate: beep.SampleRate(rate), NumChannels: 2, Precision: 2}
	require.NoError(t, wav.Encode(f, beep.Silence(n), format))
	return path
}

func newTestPlayer(t *testing.T, out chan beep.Streamer) Player {
	t.Helper()
	p, err := NewPlayer(
		WithSpeaker(false),
		WithSampleRate(44100),
		WithOutput(func(s beep.Streamer) { out <- s }),
	)
	require.NoError(t, err)
	t.Cleanup(func() { p.Close() })
	return p
}

func TestPlayDispatchesLoadedSound(t *testing.T) {
	out := make(chan beep.Streamer, 4)
	p := newTestPlayer(t, out)
	require.NoError(t, p.Load("audio_bleep_brick", writeSilence(t, 44100, 4410)))
	assert.Equal(t, []string{"audio_bleep_brick"}, p.Keys())

	p.Play("audio_bleep_brick")

	select {
	case s := <-out:
		samples := make([][2]float64, 8192)
		total := 0
		for {
			n, ok := s.Stream(samples)
			total += n
			if !ok || n == 0 {
				break
			}
		}
		assert.Equal(t, 4410, total)
	case <-time.After(5 * time.Second):
		t.Fatal("sound was not dispatched")
	}
}

func TestLoadResamples(t *testing.T) {
	out := make(chan beep.Streamer, 1)
	p := newTestPlayer(t, out).(*player)

	require.NoError(t, p.Load("low", writeSilence(t, 22050, 2205)))

	buf := p.buffers["low"]
	require.NotNil(t, buf)
	assert.Equal(t, beep.SampleRate(44100), buf.Format().SampleRate)
	assert.InDelta(t, 4410, buf.Len(), 8)
}

func TestPlayUnknownKeyIsDropped(t *testing.T) {
	out := make(chan beep.Streamer, 1)
	p := newTestPlayer(t, out)

	p.Play("missing")

	select {
	case <-out:
		t.Fatal("unknown key reached the output")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestLoadErrors(t *testing.T) {
	out := make(chan beep.Streamer, 1)
	p := newTestPlayer(t, out)

	err := p.Load("nope", filepath.Join(t.TempDir(), "nope.wav"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	err = p.LoadReader("junk", strings.NewReader("not a wav file"))
	assert.Error(t, err)
	assert.Empty(t, p.Keys())
}

func TestCloseTwice(t *testing.T) {
	p, err := NewPlayer(WithSpeaker(false))
	require.NoError(t, err)
	assert.NoError(t, p.Close())
	assert.NoError(t, p.Close())
}
