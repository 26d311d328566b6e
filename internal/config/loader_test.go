package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	m, err := NewManager()
	require.NoError(t, err)
	return m
}

func writeConfigFile(t *testing.T, content string) {
	t.Helper()
	dir := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), appDirName)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))
}

func TestManager_LoadDefaults(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.Load())

	cfg := m.Get()
	require.NotNil(t, cfg)

	assert.True(t, cfg.Controls.EnableVolumeGestures)
	assert.True(t, cfg.Controls.EnableBrightnessGestures)
	assert.False(t, cfg.Controls.PressToSwipe)
	assert.True(t, cfg.Controls.SaveAndRestoreBrightness)
	assert.False(t, cfg.Controls.EnableSwipeToChangeVideo)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestManager_LoadFromFile(t *testing.T) {
	m := newTestManager(t)
	writeConfigFile(t, `
[controls]
press_to_swipe = true
enable_volume_gestures = false

[logging]
level = "debug"
`)

	require.NoError(t, m.Load())
	cfg := m.Get()

	assert.True(t, cfg.Controls.PressToSwipe)
	assert.False(t, cfg.Controls.EnableVolumeGestures)
	assert.True(t, cfg.Controls.EnableBrightnessGestures, "unset keys keep defaults")
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestManager_EnvOverride(t *testing.T) {
	m := newTestManager(t)
	t.Setenv("SWIPECTL_CONTROLS_PRESS_TO_SWIPE", "true")
	t.Setenv("SWIPECTL_LOG_LEVEL", "warn")

	require.NoError(t, m.Load())
	cfg := m.Get()

	assert.True(t, cfg.Controls.PressToSwipe)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestManager_ValidationFailure(t *testing.T) {
	m := newTestManager(t)
	writeConfigFile(t, `
[logging]
level = "loud"
format = "xml"
`)

	err := m.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "logging.format")
}

func TestManager_Snapshot(t *testing.T) {
	m := newTestManager(t)
	writeConfigFile(t, `
[controls]
enable_swipe_to_change_video = true
save_and_restore_brightness = false
`)

	require.NoError(t, m.Load())
	snap := m.Snapshot()

	assert.True(t, snap.SwipeToChangeVideoEnabled())
	assert.False(t, snap.SaveRestoreBrightnessEnabled())
	assert.True(t, snap.VolumeGesturesEnabled())
	assert.True(t, snap.BrightnessGesturesEnabled())
	assert.False(t, snap.PressToSwipeEnabled())
}

func TestManager_SnapshotBeforeLoad(t *testing.T) {
	m := newTestManager(t)

	snap := m.Snapshot()

	assert.False(t, snap.VolumeGesturesEnabled(), "empty snapshot before Load")
}
