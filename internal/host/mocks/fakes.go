package mocks

import (
	"sync"

	"github.com/bnema/swipectl/internal/host"
)

// FakeSettings is a fixed-flag implementation of host.Settings.
type FakeSettings struct {
	Volume       bool
	Brightness   bool
	PressToSwipe bool
	SaveRestore  bool
	ChangeVideo  bool
}

func (s FakeSettings) VolumeGesturesEnabled() bool        { return s.Volume }
func (s FakeSettings) BrightnessGesturesEnabled() bool    { return s.Brightness }
func (s FakeSettings) PressToSwipeEnabled() bool          { return s.PressToSwipe }
func (s FakeSettings) SaveRestoreBrightnessEnabled() bool { return s.SaveRestore }
func (s FakeSettings) SwipeToChangeVideoEnabled() bool    { return s.ChangeVideo }

// FakeOverlay is a trivial overlay surface.
type FakeOverlay struct {
	Name string
}

func (o *FakeOverlay) ID() string { return o.Name }

// FakeContentRoot is a stateful content root tracking attached views.
type FakeContentRoot struct {
	mu sync.Mutex

	Rect host.Rect

	// Call tracking
	AddCalls    int
	RemoveCalls int

	views []host.OverlaySurface
}

// AddView implements host.ContentRoot.AddView
func (r *FakeContentRoot) AddView(s host.OverlaySurface) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.AddCalls++
	r.views = append(r.views, s)
}

// RemoveView implements host.ContentRoot.RemoveView; removing an absent
// view is a no-op, matching the port contract.
func (r *FakeContentRoot) RemoveView(s host.OverlaySurface) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.RemoveCalls++
	for i, v := range r.views {
		if v == s {
			r.views = append(r.views[:i], r.views[i+1:]...)
			return
		}
	}
}

// HasView implements host.ContentRoot.HasView
func (r *FakeContentRoot) HasView(s host.OverlaySurface) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.views {
		if v == s {
			return true
		}
	}
	return false
}

// Bounds implements host.ContentRoot.Bounds
func (r *FakeContentRoot) Bounds() host.Rect {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Rect
}

// ViewCount returns the number of attached instances of s.
func (r *FakeContentRoot) ViewCount(s host.OverlaySurface) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, v := range r.views {
		if v == s {
			n++
		}
	}
	return n
}

// TotalViews returns the number of attached views of any kind.
func (r *FakeContentRoot) TotalViews() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}

// FakeGestureInterpreter records touch events and answers through
// ConsumeTouchFunc.
type FakeGestureInterpreter struct {
	mu sync.Mutex

	// Behavior configuration
	ConsumeTouchFunc func(ev host.TouchEvent) bool

	// Call tracking
	TouchCalls []host.TouchEvent
}

// NewFakeGestureInterpreter creates a fake that never consumes.
func NewFakeGestureInterpreter() *FakeGestureInterpreter {
	return &FakeGestureInterpreter{
		ConsumeTouchFunc: func(ev host.TouchEvent) bool { return false },
	}
}

// ConsumeTouch implements host.GestureInterpreter.ConsumeTouch
func (g *FakeGestureInterpreter) ConsumeTouch(ev host.TouchEvent) bool {
	g.mu.Lock()
	g.TouchCalls = append(g.TouchCalls, ev)
	g.mu.Unlock()

	return g.ConsumeTouchFunc(ev)
}

// FakeKeyInterpreter records key events and answers through
// ConsumeKeyFunc.
type FakeKeyInterpreter struct {
	mu sync.Mutex

	ConsumeKeyFunc func(ev host.KeyEvent) bool

	KeyCalls []host.KeyEvent
}

// NewFakeKeyInterpreter creates a fake that never consumes.
func NewFakeKeyInterpreter() *FakeKeyInterpreter {
	return &FakeKeyInterpreter{
		ConsumeKeyFunc: func(ev host.KeyEvent) bool { return false },
	}
}

// ConsumeKey implements host.KeyInterpreter.ConsumeKey
func (k *FakeKeyInterpreter) ConsumeKey(ev host.KeyEvent) bool {
	k.mu.Lock()
	k.KeyCalls = append(k.KeyCalls, ev)
	k.mu.Unlock()

	return k.ConsumeKeyFunc(ev)
}

// FakeVolumeController records SetEnabled calls.
type FakeVolumeController struct {
	mu sync.Mutex

	SetEnabledCalls []bool
}

// SetEnabled implements host.VolumeController.SetEnabled
func (c *FakeVolumeController) SetEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.SetEnabledCalls = append(c.SetEnabledCalls, enabled)
}

// FakeBrightnessController records the order of device calls.
type FakeBrightnessController struct {
	mu sync.Mutex

	// Calls holds "save", "restore" and "restoreDefault" in invocation
	// order.
	Calls []string
}

// Save implements host.BrightnessController.Save
func (c *FakeBrightnessController) Save() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Calls = append(c.Calls, "save")
}

// Restore implements host.BrightnessController.Restore
func (c *FakeBrightnessController) Restore() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Calls = append(c.Calls, "restore")
}

// RestoreDefault implements host.BrightnessController.RestoreDefault
func (c *FakeBrightnessController) RestoreDefault() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Calls = append(c.Calls, "restoreDefault")
}

// FakeZoneLocator answers through BoundsFunc.
type FakeZoneLocator struct {
	BoundsFunc func() host.Rect
}

// PlayerBounds implements host.ZoneLocator.PlayerBounds
func (z *FakeZoneLocator) PlayerBounds() host.Rect {
	if z.BoundsFunc == nil {
		return host.Rect{}
	}
	return z.BoundsFunc()
}
