package model

import "github.com/bnema/swipectl/internal/host"

// The demo wires the coordinator to in-memory stand-ins for the host's
// view tree and device controllers. The gesture mapping below is toy
// code for the simulation; real interpreters are external collaborators
// of the coordinator, not part of this module's core.

// demoRoot is an in-memory content root.
type demoRoot struct {
	rect  host.Rect
	views []host.OverlaySurface
}

func (r *demoRoot) AddView(s host.OverlaySurface) {
	r.views = append(r.views, s)
}

func (r *demoRoot) RemoveView(s host.OverlaySurface) {
	for i, v := range r.views {
		if v == s {
			r.views = append(r.views[:i], r.views[i+1:]...)
			return
		}
	}
}

func (r *demoRoot) HasView(s host.OverlaySurface) bool {
	for _, v := range r.views {
		if v == s {
			return true
		}
	}
	return false
}

func (r *demoRoot) Bounds() host.Rect { return r.rect }

// demoOverlay is a named overlay surface.
type demoOverlay struct {
	name string
}

func (o *demoOverlay) ID() string { return o.name }

// demoVolume emulates an audio device with a 0-100 level.
type demoVolume struct {
	level   int
	enabled bool
}

func (v *demoVolume) SetEnabled(enabled bool) { v.enabled = enabled }

func (v *demoVolume) adjust(delta int) {
	if !v.enabled {
		return
	}
	v.level = clamp(v.level+delta, 0, 100)
}

// demoBrightness emulates a screen with save/restore semantics.
type demoBrightness struct {
	level        int
	saved        int
	defaultLevel int
}

func (b *demoBrightness) Save()           { b.saved = b.level }
func (b *demoBrightness) Restore()        { b.level = b.saved }
func (b *demoBrightness) RestoreDefault() { b.level = b.defaultLevel }

func (b *demoBrightness) adjust(delta int) {
	b.level = clamp(b.level+delta, 0, 100)
}

// demoZones answers with the geometry callback the coordinator bound.
type demoZones struct {
	bounds func() host.Rect
}

func (z *demoZones) PlayerBounds() host.Rect { return z.bounds() }

// demoGesture maps vertical drags inside the player to volume (right
// half) or brightness (left half). The press-to-swipe variant lets the
// initial press pass through and only starts consuming once movement
// follows it.
type demoGesture struct {
	env          host.GestureEnv
	volume       *demoVolume
	screen       *demoBrightness
	pressToSwipe bool

	active bool
	armed  bool
	lastY  float64
}

func newDemoGesture(env host.GestureEnv, volume *demoVolume, screen *demoBrightness, pressToSwipe bool) *demoGesture {
	return &demoGesture{
		env:          env,
		volume:       volume,
		screen:       screen,
		pressToSwipe: pressToSwipe,
	}
}

func (g *demoGesture) ConsumeTouch(ev host.TouchEvent) bool {
	bounds := g.env.Zones.PlayerBounds()

	switch ev.Phase {
	case host.TouchDown:
		if !bounds.Contains(ev.X, ev.Y) {
			g.active, g.armed = false, false
			return false
		}
		g.lastY = ev.Y
		if g.pressToSwipe {
			g.armed = true
			return false
		}
		g.active = true
		return true

	case host.TouchMove:
		if g.armed {
			g.active, g.armed = true, false
		}
		if !g.active {
			return false
		}
		delta := int((g.lastY - ev.Y) / 4)
		g.lastY = ev.Y
		if ev.X >= bounds.X+bounds.Width/2 {
			if g.env.Audio != nil {
				g.volume.adjust(delta)
			}
		} else {
			if g.env.Screen != nil {
				g.screen.adjust(delta)
			}
		}
		return true

	case host.TouchUp, host.TouchCancel:
		wasActive := g.active
		g.active, g.armed = false, false
		return wasActive
	}

	return false
}

// muteKey is the key code the demo key interpreter consumes.
const muteKey host.KeyCode = 'm'

// demoKeys toggles the audio device on the mute key.
type demoKeys struct {
	volume *demoVolume
	hasVol func() bool
}

func (k *demoKeys) ConsumeKey(ev host.KeyEvent) bool {
	if ev.Code != muteKey || !ev.Pressed {
		return false
	}
	if !k.hasVol() {
		return false
	}
	k.volume.SetEnabled(!k.volume.enabled)
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
