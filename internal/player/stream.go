package player

import "sync"

// StateStream is an observable stream of player states. Producers call
// Publish from the host's event-dispatch goroutine; subscribers receive
// each state synchronously, in subscription order.
type StateStream struct {
	mu      sync.Mutex
	nextID  int
	subs    map[int]func(State)
	order   []int
	last    State
	hasLast bool
}

// NewStateStream creates an empty stream.
func NewStateStream() *StateStream {
	return &StateStream{subs: make(map[int]func(State))}
}

// Subscribe registers fn for future state notifications and returns a
// cancel function. Cancel is safe to call more than once.
func (s *StateStream) Subscribe(fn func(State)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.order = append(s.order, id)
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			for i, v := range s.order {
				if v == id {
					s.order = append(s.order[:i], s.order[i+1:]...)
					break
				}
			}
			s.mu.Unlock()
		})
	}
}

// Publish notifies every subscriber of the new state. Callbacks run
// outside the lock so they may publish or subscribe reentrantly.
func (s *StateStream) Publish(state State) {
	s.mu.Lock()
	s.last = state
	s.hasLast = true
	fns := make([]func(State), 0, len(s.order))
	for _, id := range s.order {
		if fn, ok := s.subs[id]; ok {
			fns = append(fns, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(state)
	}
}

// Last returns the most recently published state, if any.
func (s *StateStream) Last() (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last, s.hasLast
}
