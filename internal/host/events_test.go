package host_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/swipectl/internal/host"
)

func TestRect_Contains(t *testing.T) {
	r := host.Rect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"right edge exclusive", 110, 40, false},
		{"bottom edge exclusive", 50, 70, false},
		{"left of rect", 9, 40, false},
		{"above rect", 50, 19, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.x, tt.y))
		})
	}
}

func TestTouchPhase_String(t *testing.T) {
	assert.Equal(t, "down", host.TouchDown.String())
	assert.Equal(t, "move", host.TouchMove.String())
	assert.Equal(t, "up", host.TouchUp.String())
	assert.Equal(t, "cancel", host.TouchCancel.String())
	assert.Equal(t, "unknown", host.TouchPhase(42).String())
}
