package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-breakout/config"
	"github.com/Carmen-Shannon/oxy-breakout/game"
	"github.com/Carmen-Shannon/oxy-breakout/game/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigOverrides(t *testing.T) {
	cfg, err := loadConfig("", 2, true)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Game.StartLevel)
	assert.True(t, cfg.Game.WatchLevels)

	_, err = loadConfig("", 99, false)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestShippedConfigAndLevelsLoad(t *testing.T) {
	root := filepath.Join("..", "..")
	cfg, err := config.Load(filepath.Join(root, "config.toml"))
	require.NoError(t, err)

	paths := make([]string, len(cfg.Game.Levels))
	for i, p := range cfg.Game.Levels {
		paths[i] = filepath.Join(root, p)
	}
	levels, err := loadLevels(paths, 800, 600)
	require.NoError(t, err)
	require.Len(t, levels, 4)
	for _, l := range levels {
		assert.NotEmpty(t, l.Bricks)
		assert.False(t, l.IsComplete())
	}

	for _, p := range cfg.Audio.Sounds {
		_, err := os.Stat(filepath.Join(root, p))
		assert.NoError(t, err)
	}
}

func TestApplyReloads(t *testing.T) {
	first := level.New("a", [][]int{{2}}, 100, 50)
	g := game.NewGame(100, 100, game.WithLevels(first))

	reloads := make(chan level.Reload, 2)
	replacement := level.New("b", [][]int{{3, 3}}, 100, 50)
	reloads <- level.Reload{Index: 0, Level: replacement}

	applyReloads(g, reloads)
	assert.Same(t, replacement, g.CurrentLevel())

	applyReloads(g, nil)
	assert.Same(t, replacement, g.CurrentLevel())
}
