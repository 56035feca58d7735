package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/engine"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultSnakeConfig(), cfg)
}

func TestDefaultsMatchEngine(t *testing.T) {
	ec, err := DefaultSnakeConfig().Engine(0)
	require.NoError(t, err)
	assert.Equal(t, engine.DefaultConfig(), ec)
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("timing:\n  tick_ms: 50\n"))
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Timing.TickMS)
	assert.Equal(t, 40, cfg.Grid.Cols, "unset keys keep defaults")

	ec, err := cfg.Engine(7)
	require.NoError(t, err)
	assert.Equal(t, 50*time.Millisecond, ec.Interval)
	assert.Equal(t, int64(7), ec.Seed)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unaligned start", "snake:\n  start_x: 205\n"},
		{"start off board", "snake:\n  start_x: 400\n"},
		{"unknown direction", "snake:\n  direction: sideways\n"},
		{"zero tick", "timing:\n  tick_ms: 0\n"},
		{"zero unit", "grid:\n  unit: 0\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("grid: [unclosed"))
	assert.Error(t, err)
}

func TestLoadSnakeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scoring:\n  food_reward: 25\n"), 0o600))

	cfg, err := LoadSnake(path)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Scoring.FoodReward)
}

func TestLoadSnakeMissingCustomPath(t *testing.T) {
	_, err := LoadSnake(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadSnakeSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	// Nothing on disk: embedded default.
	cfg, err := LoadSnake("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSnakeConfig(), cfg)

	// Local configs directory.
	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", "snake.yaml"), []byte("timing:\n  tick_ms: 80\n"), 0o600))
	cfg, err = LoadSnake("")
	require.NoError(t, err)
	assert.Equal(t, 80, cfg.Timing.TickMS)

	// User directory wins over local.
	userDir := filepath.Join(home, ".snake", "configs")
	require.NoError(t, os.MkdirAll(userDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(userDir, "snake.yaml"), []byte("timing:\n  tick_ms: 60\n"), 0o600))
	cfg, err = LoadSnake("")
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.Timing.TickMS)
}

func TestApplyBoardPreset(t *testing.T) {
	for _, preset := range BoardPresets() {
		t.Run(string(preset), func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			require.NoError(t, ApplyBoardPreset(&cfg, preset))
			assert.NoError(t, cfg.Validate())
		})
	}

	cfg := DefaultSnakeConfig()
	require.NoError(t, ApplyBoardPreset(&cfg, BoardSmall))
	assert.Equal(t, 20, cfg.Grid.Cols)
	assert.Equal(t, 100, cfg.Snake.StartX)

	assert.NoError(t, ApplyBoardPreset(&cfg, ""))
	assert.ErrorIs(t, ApplyBoardPreset(&cfg, "huge"), ErrInvalid)
}
