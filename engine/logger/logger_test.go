package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelWarn)

	l.Info("[Game] hidden")
	l.Warn("[Level] reload skipped", "path", "one.lvl")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "path=one.lvl")
	assert.NotContains(t, out, "\x1b[", "buffers are not terminals")
}

func TestColorLevel(t *testing.T) {
	out := termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.ANSI))
	replace := colorLevel(out)

	a := replace(nil, slog.Any(slog.LevelKey, slog.LevelError))
	assert.Contains(t, a.Value.String(), "\x1b[")
	assert.Contains(t, a.Value.String(), "ERROR")

	other := replace(nil, slog.String("msg", "x"))
	assert.Equal(t, "x", other.Value.String())

	assert.Nil(t, colorLevel(termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.Ascii))))
}
