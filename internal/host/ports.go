package host

import "github.com/bnema/swipectl/internal/player"

// Settings is the read-only feature-flag facade consumed at
// initialization. Implementations must be side-effect free.
type Settings interface {
	VolumeGesturesEnabled() bool
	BrightnessGesturesEnabled() bool
	PressToSwipeEnabled() bool
	SaveRestoreBrightnessEnabled() bool
	SwipeToChangeVideoEnabled() bool
}

// GestureInterpreter converts raw touch events into consumed /
// not-consumed decisions. Two interchangeable variants exist (classic
// continuous swipe and press-to-activate); the coordinator is oblivious
// to which one is active.
type GestureInterpreter interface {
	// ConsumeTouch returns true when the event was fully absorbed and
	// must not reach the host's default dispatch.
	ConsumeTouch(ev TouchEvent) bool
}

// KeyInterpreter converts raw key events into consumed / not-consumed
// decisions.
type KeyInterpreter interface {
	ConsumeKey(ev KeyEvent) bool
}

// VolumeController is the device-control port for audio volume.
type VolumeController interface {
	SetEnabled(enabled bool)
}

// BrightnessController is the device-control port for screen
// brightness. Save captures the current value, Restore reapplies the
// captured value, RestoreDefault reverts to the system default.
type BrightnessController interface {
	Save()
	Restore()
	RestoreDefault()
}

// ZoneLocator supplies the current player rectangle on demand.
type ZoneLocator interface {
	PlayerBounds() Rect
}

// OverlaySurface is the view-like object layered atop the player to
// capture or visualize gestures. The coordinator only attaches and
// detaches it; rendering is the host's concern.
type OverlaySurface interface {
	ID() string
}

// ContentRoot is the host view the overlay attaches to. RemoveView must
// be safe to call when the surface is not attached.
type ContentRoot interface {
	AddView(s OverlaySurface)
	RemoveView(s OverlaySurface)
	HasView(s OverlaySurface) bool
	Bounds() Rect
}

// GestureEnv hands a gesture interpreter its collaborators at
// construction time. Audio and Screen are nil when the corresponding
// feature is disabled.
type GestureEnv struct {
	Zones   ZoneLocator
	Audio   VolumeController
	Screen  BrightnessController
	Overlay OverlaySurface
}

// Deps wires a Coordinator to its external collaborators. The
// constructor funcs realize the factory policy: each is invoked at most
// once, at initialization, and only when the matching feature flag is
// enabled.
type Deps struct {
	Settings Settings
	Root     ContentRoot
	States   *player.StateStream

	NewVolume     func() VolumeController
	NewBrightness func() BrightnessController
	NewOverlay    func() OverlaySurface
	NewZones      func(bounds func() Rect) ZoneLocator
	NewKeys       func() KeyInterpreter

	NewClassicGesture func(env GestureEnv) GestureInterpreter
	NewPressGesture   func(env GestureEnv) GestureInterpreter

	// DefaultTouch and DefaultKey invoke the host's own un-intercepted
	// dispatch path. They are called only when the matching interpreter
	// did not consume the event.
	DefaultTouch func(ev TouchEvent) bool
	DefaultKey   func(ev KeyEvent) bool
}
