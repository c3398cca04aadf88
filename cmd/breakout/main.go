// Command breakout runs the Breakout game in a window.
//
// Controls: A/D or the arrow keys (or the mouse) move the paddle, Space or a
// left click launches the ball. On the menu W/S pick the level. Escape quits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Carmen-Shannon/oxy-breakout/config"
	"github.com/Carmen-Shannon/oxy-breakout/engine"
	"github.com/Carmen-Shannon/oxy-breakout/engine/audio"
	"github.com/Carmen-Shannon/oxy-breakout/engine/logger"
	"github.com/Carmen-Shannon/oxy-breakout/engine/profiler"
	"github.com/Carmen-Shannon/oxy-breakout/engine/renderer"
	"github.com/Carmen-Shannon/oxy-breakout/engine/window"
	"github.com/Carmen-Shannon/oxy-breakout/game"
	"github.com/Carmen-Shannon/oxy-breakout/game/level"
)

func main() {
	configPath := flag.String("config", "", "TOML or YAML config file (defaults are used when empty)")
	startLevel := flag.Int("level", -1, "index of the level to start on")
	watch := flag.Bool("watch", false, "reload level files when they change on disk")
	flag.Parse()

	cfg, err := loadConfig(*configPath, *startLevel, *watch)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	lvl, _ := config.ParseLogLevel(cfg.Engine.LogLevel)
	logger.SetDefault(os.Stderr, lvl)

	if err := run(cfg); err != nil {
		slog.Error("[Breakout] exiting", "err", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file, if any, and applies the command-line overrides.
func loadConfig(path string, startLevel int, watch bool) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}
	if startLevel >= 0 {
		cfg.Game.StartLevel = startLevel
	}
	if watch {
		cfg.Game.WatchLevels = true
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadLevels lays every level out over the top half of the play area.
func loadLevels(paths []string, width, height float32) ([]*level.GameLevel, error) {
	levels := make([]*level.GameLevel, 0, len(paths))
	for _, p := range paths {
		l, err := level.LoadFile(p, width, height/2)
		if err != nil {
			return nil, err
		}
		levels = append(levels, l)
	}
	return levels, nil
}

// newSoundPlayer creates the audio player and loads every configured sound.
func newSoundPlayer(cfg config.AudioConfig) (audio.Player, error) {
	p, err := audio.NewPlayer(
		audio.WithSampleRate(cfg.SampleRate),
		audio.WithVolume(cfg.Volume),
		audio.WithMuted(cfg.Muted),
		audio.WithWorkers(cfg.Workers),
	)
	if err != nil {
		return nil, err
	}
	var errs []error
	for key, path := range cfg.Sounds {
		if err := p.Load(key, path); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		p.Close()
		return nil, err
	}
	return p, nil
}

func run(cfg config.Config) error {
	width, height := float32(cfg.Window.Width), float32(cfg.Window.Height)

	levels, err := loadLevels(cfg.Game.Levels, width, height)
	if err != nil {
		return err
	}

	options := []game.GameBuilderOption{
		game.WithLevels(levels...),
		game.WithStartLevel(cfg.Game.StartLevel),
		game.WithLives(cfg.Game.Lives),
		game.WithPlayerVelocity(cfg.Game.PlayerVelocity),
	}
	if cfg.Game.StartInMenu {
		options = append(options, game.WithState(game.StateMenu))
	}
	if cfg.Audio.Enabled {
		sounds, err := newSoundPlayer(cfg.Audio)
		if err != nil {
			return fmt.Errorf("failed to set up audio: %w", err)
		}
		defer sounds.Close()
		options = append(options, game.WithSoundSink(sounds))
	}
	g := game.NewGame(width, height, options...)

	var reloads <-chan level.Reload
	if cfg.Game.WatchLevels {
		w, err := level.NewWatcher(cfg.Game.Levels, width, height/2)
		if err != nil {
			return err
		}
		defer w.Close()
		reloads = w.Updates()
	}

	win := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithWidth(cfg.Window.Width),
		window.WithHeight(cfg.Window.Height),
		window.WithResizable(cfg.Window.Resizable),
	)

	r, err := renderer.NewRenderer(renderer.BackendTypeWGPU, win,
		renderer.WithPresentMode(renderer.PresentModeVSync),
	)
	if err != nil {
		win.Close()
		return err
	}
	win.SetResizeCallback(r.Resize)

	input := newInputCollector()
	start := time.Now()

	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithTickRate(cfg.Engine.TickRate),
		engine.WithMaxDelta(cfg.MaxDeltaDuration()),
		engine.WithProfiler(profiler.NewProfiler(cfg.ProfileIntervalDuration(), slog.Default())),
		engine.WithProfiling(cfg.Engine.Profiling),
		engine.WithTickCallback(func(dt float32) {
			applyReloads(g, reloads)
			g.Step(input.Snapshot(), dt)
		}),
		engine.WithRenderCallback(func(float32) {
			fx := renderer.PostEffects{
				Shake:   g.Effects.Shake,
				Confuse: g.Effects.Confuse,
				Chaos:   g.Effects.Chaos,
			}
			if err := r.Draw(g.Objects(), fx, float32(time.Since(start).Seconds())); err != nil {
				slog.Warn("[Renderer] frame dropped", "err", err)
			}
		}),
	)
	input.attach(win, eng.Quit)

	slog.Info("[Breakout] starting",
		"levels", len(levels),
		"level", cfg.Game.StartLevel,
		"state", g.State,
		"watch", cfg.Game.WatchLevels,
	)
	eng.Run()

	r.Release()
	return win.Close()
}

// applyReloads swaps in every level the watcher has reparsed since the last frame.
func applyReloads(g *game.Game, reloads <-chan level.Reload) {
	for {
		select {
		case rl := <-reloads:
			g.ReplaceLevel(rl.Index, rl.Level)
		default:
			return
		}
	}
}
