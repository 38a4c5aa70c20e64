package showcase

import (
	"errors"
	"fmt"
)

var (
	ErrEmptySequence   = errors.New("showcase: sequence is empty")
	ErrIndexOutOfRange = errors.New("showcase: index out of range")
	ErrInvalidStep     = errors.New("showcase: step must be +1 or -1")
	ErrDisposed        = errors.New("showcase: player disposed")
)

// Item is one entry of the rotating showcase (a client testimonial on the site)
type Item struct {
	ID       int
	Quote    string
	Name     string
	Position string
	Company  string
}

// Direction is the sign of the most recent move. It only selects the transition.
type Direction int

const (
	Backward Direction = -1
	Still    Direction = 0
	Forward  Direction = 1
)

// String returns the transition name used by the views
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "still"
	}
}

// State is a read-only copy of the showcase at one point in time
type State struct {
	Index         int
	Direction     Direction
	AutoAdvancing bool
	Count         int
	Current       Item
}

// Showcase holds the rotation state over a fixed sequence of items.
// It has no timer of its own; Player drives Tick.
type Showcase struct {
	items     []Item
	index     int
	direction Direction
	auto      bool
}

// New mounts a showcase at index 0 with auto-advance on
func New(items []Item) (*Showcase, error) {
	if len(items) == 0 {
		return nil, ErrEmptySequence
	}
	seq := make([]Item, len(items))
	copy(seq, items)
	return &Showcase{
		items: seq,
		auto:  true,
	}, nil
}

// Len returns the number of items in the sequence
func (s *Showcase) Len() int {
	return len(s.items)
}

// Items returns a copy of the sequence
func (s *Showcase) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// State returns the current state
func (s *Showcase) State() State {
	return State{
		Index:         s.index,
		Direction:     s.direction,
		AutoAdvancing: s.auto,
		Count:         len(s.items),
		Current:       s.items[s.index],
	}
}

// Advance moves one step forward or backward, wrapping at both ends.
// Manual navigation turns auto-advance off.
func (s *Showcase) Advance(step Direction) error {
	if step != Forward && step != Backward {
		return fmt.Errorf("%w: got %d", ErrInvalidStep, step)
	}
	s.move(step)
	s.auto = false
	return nil
}

// Select jumps directly to target. Out-of-range targets leave the state untouched.
func (s *Showcase) Select(target int) error {
	if target < 0 || target >= len(s.items) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, target, len(s.items))
	}
	if target > s.index {
		s.direction = Forward
	} else {
		s.direction = Backward
	}
	s.index = target
	s.auto = false
	return nil
}

// Pause turns auto-advance off
func (s *Showcase) Pause() {
	s.auto = false
}

// Resume turns auto-advance on
func (s *Showcase) Resume() {
	s.auto = true
}

// Tick is the automatic advance. It is a no-op while paused and, unlike
// Advance, leaves auto-advance on.
func (s *Showcase) Tick() bool {
	if !s.auto {
		return false
	}
	s.move(Forward)
	return true
}

func (s *Showcase) move(step Direction) {
	n := len(s.items)
	s.direction = step
	s.index = (s.index + int(step) + n) % n
}
