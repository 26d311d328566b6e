package config

import "github.com/spf13/viper"

// Default configuration constants
const (
	// Controls defaults
	defaultEnableVolumeGestures     = true
	defaultEnableBrightnessGestures = true
	defaultPressToSwipe             = false
	defaultSaveAndRestoreBrightness = true
	defaultEnableSwipeToChangeVideo = false

	// Logging defaults
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// setDefaults registers every default value with viper so that a missing
// config file yields a fully usable configuration.
func setDefaults(v *viper.Viper) {
	v.SetDefault("controls.enable_volume_gestures", defaultEnableVolumeGestures)
	v.SetDefault("controls.enable_brightness_gestures", defaultEnableBrightnessGestures)
	v.SetDefault("controls.press_to_swipe", defaultPressToSwipe)
	v.SetDefault("controls.save_and_restore_brightness", defaultSaveAndRestoreBrightness)
	v.SetDefault("controls.enable_swipe_to_change_video", defaultEnableSwipeToChangeVideo)

	v.SetDefault("logging.level", defaultLogLevel)
	v.SetDefault("logging.format", defaultLogFormat)
}
