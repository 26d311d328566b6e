// Package host implements the event-interception coordinator that
// augments a third-party video-player screen with swipe-based volume
// and brightness controls. The coordinator owns lazy initialization of
// its collaborators against an externally-owned screen lifecycle,
// routes touch and key events to pluggable interpreters, and keeps the
// brightness save/restore cycle in sync with the observed player state.
//
// Everything here runs synchronously on the host's event-dispatch
// goroutine; coordinator state is never touched from anywhere else, so
// no locking is used. The weak current-host registry is the only
// cross-cutting surface and is synchronized separately.
package host

import (
	"context"

	"github.com/bnema/swipectl/internal/logging"
	"github.com/bnema/swipectl/internal/player"
)

// flagSnapshot is the feature-flag configuration read once at
// initialization and fixed for the coordinator's lifetime.
type flagSnapshot struct {
	volume       bool
	brightness   bool
	pressToSwipe bool
	saveRestore  bool
	changeVideo  bool
}

// Coordinator is the per-host-screen event-interception coordinator.
// Create one per host screen instance with New, then forward the host's
// lifecycle signals to OnCreate, OnStart, OnDestroy, DispatchTouch and
// DispatchKey.
type Coordinator struct {
	ctx  context.Context
	deps Deps

	// Initialization fields. All-or-nothing: either every field below
	// is set (initialized) or none is; flags doubles as the guard.
	flags   *flagSnapshot
	keys    KeyInterpreter
	gesture GestureInterpreter
	zones   ZoneLocator
	overlay OverlaySurface

	// Optional controllers, nil when the feature is disabled. Callers
	// inside this package treat absence as a valid non-error state.
	audio  VolumeController
	screen BrightnessController

	// isBrightnessSaved is true iff a brightness override is active and
	// an original value has been captured.
	isBrightnessSaved bool

	cancelStates func()
}

// New creates a coordinator for one host screen instance. Construction
// performs no side effects; collaborators are built lazily on the first
// create signal (or the first input event, if the host skips it).
func New(ctx context.Context, deps Deps) *Coordinator {
	ctx = logging.WithComponent(ctx, "host")
	logging.FromContext(ctx).Debug().Msg("creating host coordinator")

	return &Coordinator{
		ctx:  ctx,
		deps: deps,
	}
}

// OnCreate handles the host's create signal by initializing once.
// Repeated create signals are ignored.
func (c *Coordinator) OnCreate() {
	if c.initialized() {
		logging.FromContext(c.ctx).Warn().Msg("duplicate create signal ignored")
		return
	}
	c.initialize()
}

// OnStart handles the host's start signal by reattaching the overlay.
func (c *Coordinator) OnStart() {
	c.ReattachOverlay()
}

// OnDestroy detaches the overlay and unsubscribes from the player-state
// stream so the coordinator becomes collectable once the host drops it.
// Safe to call when never initialized.
func (c *Coordinator) OnDestroy() {
	if c.cancelStates != nil {
		c.cancelStates()
		c.cancelStates = nil
	}
	if c.overlay != nil {
		c.deps.Root.RemoveView(c.overlay)
	}
}

// DispatchTouch routes a touch event. It returns true when the event
// was consumed and the host's default handling must not run. A nil
// event is a no-op.
func (c *Coordinator) DispatchTouch(ev *TouchEvent) bool {
	if ev == nil {
		return false
	}
	c.ensureInitialized()

	if c.gesture.ConsumeTouch(*ev) {
		return true
	}
	if c.deps.DefaultTouch == nil {
		return false
	}
	return c.deps.DefaultTouch(*ev)
}

// DispatchKey routes a key event. It returns true when the event was
// consumed and the host's default handling must not run. A nil event is
// a no-op.
func (c *Coordinator) DispatchKey(ev *KeyEvent) bool {
	if ev == nil {
		return false
	}
	c.ensureInitialized()

	if c.keys.ConsumeKey(*ev) {
		return true
	}
	if c.deps.DefaultKey == nil {
		return false
	}
	return c.deps.DefaultKey(*ev)
}

// ReattachOverlay removes the overlay from the content root if present
// and re-adds it. Idempotent: after any number of calls the root holds
// exactly one instance of the overlay. A logged no-op while
// uninitialized.
func (c *Coordinator) ReattachOverlay() {
	log := logging.FromContext(c.ctx)

	if c.overlay == nil {
		log.Debug().Msg("reattach requested before initialization, skipping")
		return
	}

	c.deps.Root.RemoveView(c.overlay)
	c.deps.Root.AddView(c.overlay)
	log.Trace().Str("overlay", c.overlay.ID()).Msg("overlay reattached")
}

// SwipeToChangeVideoEnabled reports the swipe-to-change-video flag as
// bound at initialization. False while uninitialized. Safe on a nil
// receiver so registry lookups can be chained without a check.
func (c *Coordinator) SwipeToChangeVideoEnabled() bool {
	if c == nil || c.flags == nil {
		return false
	}
	return c.flags.changeVideo
}

func (c *Coordinator) initialized() bool {
	return c.flags != nil
}

// ensureInitialized self-heals hosts whose create signal never fired
// (observed on some OS versions): it initializes and reattaches
// synchronously before the triggering event proceeds. Not an error
// condition.
func (c *Coordinator) ensureInitialized() {
	if c.initialized() {
		return
	}
	logging.FromContext(c.ctx).Warn().Msg("create signal never arrived, initializing on first input event")
	c.initialize()
	c.ReattachOverlay()
}

// initialize resolves configuration and builds the full dependency
// graph. Callers must guard against double invocation; the fields set
// here are all-or-nothing.
func (c *Coordinator) initialize() {
	log := logging.FromContext(c.ctx)

	s := c.deps.Settings
	c.flags = &flagSnapshot{
		volume:       s.VolumeGesturesEnabled(),
		brightness:   s.BrightnessGesturesEnabled(),
		pressToSwipe: s.PressToSwipeEnabled(),
		saveRestore:  s.SaveRestoreBrightnessEnabled(),
		changeVideo:  s.SwipeToChangeVideoEnabled(),
	}

	c.keys = c.deps.NewKeys()

	if c.flags.volume {
		c.audio = c.deps.NewVolume()
	}
	if c.flags.brightness {
		c.screen = c.deps.NewBrightness()
	}

	c.overlay = c.deps.NewOverlay()
	c.deps.Root.AddView(c.overlay)

	c.zones = c.deps.NewZones(c.deps.Root.Bounds)

	env := GestureEnv{
		Zones:   c.zones,
		Audio:   c.audio,
		Screen:  c.screen,
		Overlay: c.overlay,
	}
	if c.flags.pressToSwipe {
		c.gesture = c.deps.NewPressGesture(env)
	} else {
		c.gesture = c.deps.NewClassicGesture(env)
	}

	if c.deps.States != nil {
		c.cancelStates = c.deps.States.Subscribe(c.onPlayerState)
	}

	setCurrent(c)

	log.Debug().
		Bool("volume", c.flags.volume).
		Bool("brightness", c.flags.brightness).
		Bool("press_to_swipe", c.flags.pressToSwipe).
		Bool("save_restore", c.flags.saveRestore).
		Msg("host coordinator initialized")
}

// onPlayerState applies the brightness transition table. The branches
// are order-sensitive: a saved value must be restored before any new
// save is considered. Repeated notifications in the unsaved state
// deliberately re-capture the current brightness on every call.
func (c *Coordinator) onPlayerState(state player.State) {
	log := logging.FromContext(c.ctx)
	log.Trace().Stringer("state", state).Bool("saved", c.isBrightnessSaved).Msg("player state changed")

	switch {
	case c.flags.saveRestore && state == player.StateFullscreen && c.isBrightnessSaved:
		c.screenRestore()
		c.isBrightnessSaved = false
	case c.flags.saveRestore && !c.isBrightnessSaved:
		c.screenSave()
		c.screenRestoreDefault()
		c.isBrightnessSaved = true
	case !c.flags.saveRestore:
		c.screenRestoreDefault()
	}
}

func (c *Coordinator) screenSave() {
	if c.screen != nil {
		c.screen.Save()
	}
}

func (c *Coordinator) screenRestore() {
	if c.screen != nil {
		c.screen.Restore()
	}
}

func (c *Coordinator) screenRestoreDefault() {
	if c.screen != nil {
		c.screen.RestoreDefault()
	}
}
