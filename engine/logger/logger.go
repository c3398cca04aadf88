// Package logger builds the engine's slog logger. Levels are colour coded when
// the output is a terminal that supports it.
package logger

import (
	"io"
	"log/slog"

	"github.com/muesli/termenv"
)

var levelColors = map[slog.Level]termenv.ANSIColor{
	slog.LevelDebug: termenv.ANSIBrightBlack,
	slog.LevelInfo:  termenv.ANSIGreen,
	slog.LevelWarn:  termenv.ANSIYellow,
	slog.LevelError: termenv.ANSIRed,
}

// New creates a text logger writing to w at the given minimum level.
//
// Parameters:
//   - w: the destination, usually os.Stderr
//   - level: the minimum level logged
//
// Returns:
//   - *slog.Logger: the logger
func New(w io.Writer, level slog.Leveler) *slog.Logger {
	out := termenv.NewOutput(w)
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: colorLevel(out),
	}))
}

// SetDefault installs a logger built by New as the slog default.
//
// Parameters:
//   - w: the destination
//   - level: the minimum level logged
//
// Returns:
//   - *slog.Logger: the installed logger
func SetDefault(w io.Writer, level slog.Leveler) *slog.Logger {
	l := New(w, level)
	slog.SetDefault(l)
	return l
}

func colorLevel(out *termenv.Output) func([]string, slog.Attr) slog.Attr {
	if out.Profile == termenv.Ascii {
		return nil
	}
	return func(groups []string, a slog.Attr) slog.Attr {
		if len(groups) > 0 || a.Key != slog.LevelKey {
			return a
		}
		lvl, ok := a.Value.Any().(slog.Level)
		if !ok {
			return a
		}
		c, ok := levelColors[lvl]
		if !ok {
			return a
		}
		a.Value = slog.StringValue(out.String(lvl.String()).Foreground(c).Bold().String())
		return a
	}
}
