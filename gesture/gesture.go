// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture implements the horizontal slide gesture that
drives a side panel.

A Slide accepts low level pointer Events and decides whether a
touch sequence belongs to the panel: it waits until the pointer
has travelled past a small slop in a permitted direction, then
commits and reports horizontal displacements of a single
tracked pointer until the sequence ends.
*/
package gesture

import (
	"gioui.org/x/sideslip/io/pointer"
)

// Slide detects horizontal slides. The zero value is idle.
type Slide struct {
	state State
	// lastX is the last seen x position of the
	// detecting or tracked pointer.
	lastX float32
	// pid is the tracked pointer, valid if tracking
	// is set.
	pid      pointer.ID
	tracking bool
}

// State of a Slide.
type State uint8

// Heading is a horizontal drag direction.
type Heading int8

const (
	// StateIdle is the state between touch sequences.
	StateIdle State = iota
	// StateDetecting is reported after a press, while the
	// direction of the slide is not yet known.
	StateDetecting
	// StateDragging is reported after the slide has
	// committed, until release or cancel.
	StateDragging
)

const (
	Leftward  Heading = -1
	Rightward Heading = 1
)

// slop is the horizontal distance a pointer must travel before
// its direction is known.
const slop = 4

// Press starts a new touch sequence at x. Any commitment from a
// previous sequence is discarded.
func (s *Slide) Press(x float32) {
	s.state = StateDetecting
	s.lastX = x
	s.tracking = false
}

// Detect processes a move while the direction is unknown and
// reports whether the slide is committed. Only movement in the
// valid heading commits; other movement just updates the
// reference position. Once committed, the first pointer of e
// becomes the tracked pointer.
func (s *Slide) Detect(e pointer.Event, valid Heading) bool {
	if len(e.Pointers) == 0 {
		return s.state == StateDragging
	}
	x := e.Pointers[0].Position.X
	switch s.state {
	case StateDragging:
		return true
	case StateIdle:
		// A move without a press: start detecting from here.
		s.state = StateDetecting
		s.lastX = x
		return false
	}
	d := x - s.lastX
	if (d >= slop && valid == Rightward) || (d <= -slop && valid == Leftward) {
		s.state = StateDragging
		s.pid = e.Pointers[0].ID
		s.tracking = true
	}
	s.lastX = x
	return s.state == StateDragging
}

// Drag returns the horizontal displacement of the tracked pointer
// since the last event. If no pointer is tracked, or the tracked
// pointer is missing from e, the first pointer of e is tracked
// instead and the displacement is zero.
func (s *Slide) Drag(e pointer.Event) float32 {
	if len(e.Pointers) == 0 {
		return 0
	}
	idx, ok := 0, false
	if s.tracking {
		idx, ok = e.Find(s.pid)
	}
	if !ok {
		s.acquire(e)
		return 0
	}
	x := e.Pointers[idx].Position.X
	d := x - s.lastX
	s.lastX = x
	return d
}

func (s *Slide) acquire(e pointer.Event) {
	s.pid = e.Pointers[0].ID
	s.lastX = e.Pointers[0].Position.X
	s.tracking = true
}

// Forget clears the tracked pointer. The next call to Drag
// tracks a new one.
func (s *Slide) Forget() {
	s.tracking = false
}

// Release ends the touch sequence and reports whether it
// was committed.
func (s *Slide) Release() bool {
	committed := s.state == StateDragging
	s.state = StateIdle
	s.tracking = false
	return committed
}

// State reports the slide state.
func (s *Slide) State() State {
	return s.state
}

// Tracked returns the tracked pointer, if any.
func (s *Slide) Tracked() (pointer.ID, bool) {
	return s.pid, s.tracking
}

func (s State) String() string {
	switch s {
	case StateIdle:
		return "StateIdle"
	case StateDetecting:
		return "StateDetecting"
	case StateDragging:
		return "StateDragging"
	default:
		panic("invalid State")
	}
}

func (h Heading) String() string {
	switch h {
	case Leftward:
		return "Leftward"
	case Rightward:
		return "Rightward"
	default:
		panic("invalid Heading")
	}
}
