// Package config loads and watches the swipectl configuration.
package config

// Config is the root configuration structure.
type Config struct {
	Controls ControlsConfig `mapstructure:"controls"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ControlsConfig holds the swipe-controls feature flags.
type ControlsConfig struct {
	EnableVolumeGestures     bool `mapstructure:"enable_volume_gestures"`
	EnableBrightnessGestures bool `mapstructure:"enable_brightness_gestures"`
	PressToSwipe             bool `mapstructure:"press_to_swipe"`
	SaveAndRestoreBrightness bool `mapstructure:"save_and_restore_brightness"`
	EnableSwipeToChangeVideo bool `mapstructure:"enable_swipe_to_change_video"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Snapshot is an immutable view of the feature flags taken at a single
// point in time. It satisfies the coordinator's read-only settings
// facade; later config reloads do not affect snapshots already handed
// out.
type Snapshot struct {
	controls ControlsConfig
}

// NewSnapshot freezes the given controls configuration.
func NewSnapshot(controls ControlsConfig) Snapshot {
	return Snapshot{controls: controls}
}

// VolumeGesturesEnabled reports whether swipe volume control is enabled.
func (s Snapshot) VolumeGesturesEnabled() bool { return s.controls.EnableVolumeGestures }

// BrightnessGesturesEnabled reports whether swipe brightness control is enabled.
func (s Snapshot) BrightnessGesturesEnabled() bool { return s.controls.EnableBrightnessGestures }

// PressToSwipeEnabled reports whether gestures require a press to activate.
func (s Snapshot) PressToSwipeEnabled() bool { return s.controls.PressToSwipe }

// SaveRestoreBrightnessEnabled reports whether the brightness
// save/restore cycle is enabled.
func (s Snapshot) SaveRestoreBrightnessEnabled() bool { return s.controls.SaveAndRestoreBrightness }

// SwipeToChangeVideoEnabled reports whether horizontal swipes may change
// the current video.
func (s Snapshot) SwipeToChangeVideoEnabled() bool { return s.controls.EnableSwipeToChangeVideo }
