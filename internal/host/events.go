package host

import "time"

// TouchPhase identifies the stage of a touch sequence.
type TouchPhase int

const (
	// TouchDown is the initial finger contact.
	TouchDown TouchPhase = iota
	// TouchMove is a movement while in contact.
	TouchMove
	// TouchUp is the finger lifting off.
	TouchUp
	// TouchCancel is a sequence aborted by the host.
	TouchCancel
)

// String implements fmt.Stringer.
func (p TouchPhase) String() string {
	switch p {
	case TouchDown:
		return "down"
	case TouchMove:
		return "move"
	case TouchUp:
		return "up"
	case TouchCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// TouchEvent is a raw touch sample delivered by the host screen.
type TouchEvent struct {
	Phase TouchPhase
	X     float64
	Y     float64
	When  time.Time
}

// KeyCode identifies a hardware or virtual key.
type KeyCode uint32

// KeyEvent is a raw key event delivered by the host screen.
type KeyEvent struct {
	Code    KeyCode
	Pressed bool
	When    time.Time
}

// Rect is a screen rectangle in host coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Contains reports whether the point (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}
