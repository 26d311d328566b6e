// Package player models the externally observed video-player state.
package player

// State is a discrete mode of the video player as observed from the
// host screen.
type State int

const (
	// StateHidden means no player UI is visible.
	StateHidden State = iota
	// StateEmbedded means the player is visible inside the page layout.
	StateEmbedded
	// StateFullscreen means the player covers the whole screen.
	StateFullscreen
	// StateBackground means playback continues without visible UI.
	StateBackground
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateHidden:
		return "hidden"
	case StateEmbedded:
		return "embedded"
	case StateFullscreen:
		return "fullscreen"
	case StateBackground:
		return "background"
	default:
		return "unknown"
	}
}
