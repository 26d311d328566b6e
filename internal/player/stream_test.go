package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateStream_PublishNotifiesInOrder(t *testing.T) {
	s := NewStateStream()

	var got []string
	s.Subscribe(func(st State) { got = append(got, "a:"+st.String()) })
	s.Subscribe(func(st State) { got = append(got, "b:"+st.String()) })

	s.Publish(StateFullscreen)

	assert.Equal(t, []string{"a:fullscreen", "b:fullscreen"}, got)
}

func TestStateStream_Cancel(t *testing.T) {
	s := NewStateStream()

	calls := 0
	cancel := s.Subscribe(func(State) { calls++ })

	s.Publish(StateEmbedded)
	cancel()
	cancel() // safe to call twice
	s.Publish(StateFullscreen)

	assert.Equal(t, 1, calls)
}

func TestStateStream_Last(t *testing.T) {
	s := NewStateStream()

	_, ok := s.Last()
	assert.False(t, ok, "no state before the first publish")

	s.Publish(StateBackground)
	last, ok := s.Last()
	assert.True(t, ok)
	assert.Equal(t, StateBackground, last)
}

func TestStateStream_ReentrantSubscribe(t *testing.T) {
	s := NewStateStream()

	nested := 0
	s.Subscribe(func(State) {
		s.Subscribe(func(State) { nested++ })
	})

	s.Publish(StateEmbedded)
	assert.Equal(t, 0, nested, "new subscriber must not see the triggering state")

	s.Publish(StateFullscreen)
	assert.Equal(t, 1, nested)
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateHidden, "hidden"},
		{StateEmbedded, "embedded"},
		{StateFullscreen, "fullscreen"},
		{StateBackground, "background"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.state.String())
	}
}
