// SPDX-License-Identifier: Unlicense OR MIT

/*
Package pointer describes the multi-pointer touch events a host
delivers to a side panel.

An Event carries the position of every pointer that is down when
the event occurs, not just the pointer that triggered it. Pointers
are identified by ID from the press that puts them down until the
release that lifts them; their index in Event.Pointers may change
between events.
*/
package pointer

import (
	"strings"

	"golang.org/x/exp/slices"

	"gioui.org/x/sideslip/f32"
)

// Event is a pointer event.
type Event struct {
	Kind   Kind
	Source Source
	// Pointers are the pointers down during the event, in
	// the local coordinate system of the receiver. A pointer
	// being lifted by a Release or PointerRelease is included.
	Pointers []Pointer
}

// Pointer is the state of a single pointer in an Event.
type Pointer struct {
	// ID tracks a particular pointer from the press that
	// put it down to its release or cancel.
	ID       ID
	Position f32.Point
}

// ID uniquely identifies a pointer during a gesture.
type ID uint16

// Kind of an Event.
type Kind uint

// Source of an Event.
type Source uint8

const (
	// A Cancel event is generated when the current gesture is
	// interrupted by other handlers or the system.
	Cancel Kind = (1 << iota) >> 1
	// Press of the first pointer of a gesture.
	Press
	// Release of the last pointer of a gesture.
	Release
	// Move of one or more pointers.
	Move
	// PointerPress of an additional pointer while
	// another is down.
	PointerPress
	// PointerRelease of a pointer while another
	// remains down.
	PointerRelease
)

const (
	// Mouse generated event.
	Mouse Source = iota
	// Touch generated event.
	Touch
)

// Single returns an event with one pointer, id 0, at pos.
func Single(k Kind, pos f32.Point) Event {
	return Event{
		Kind:     k,
		Source:   Touch,
		Pointers: []Pointer{{Position: pos}},
	}
}

// Find returns the index of the pointer with the given id, or
// false if no such pointer is part of the event.
func (e Event) Find(id ID) (int, bool) {
	i := slices.IndexFunc(e.Pointers, func(p Pointer) bool {
		return p.ID == id
	})
	return i, i != -1
}

// Position returns the position of the first pointer, or the
// zero point for an event without pointers.
func (e Event) Position() f32.Point {
	if len(e.Pointers) == 0 {
		return f32.Point{}
	}
	return e.Pointers[0].Position
}

func (t Kind) String() string {
	if t == Cancel {
		return "Cancel"
	}
	var buf strings.Builder
	for tt := Kind(1); tt > 0; tt <<= 1 {
		if t&tt > 0 {
			if buf.Len() > 0 {
				buf.WriteByte('|')
			}
			buf.WriteString((t & tt).string())
		}
	}
	return buf.String()
}

func (t Kind) string() string {
	switch t {
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Cancel:
		return "Cancel"
	case Move:
		return "Move"
	case PointerPress:
		return "PointerPress"
	case PointerRelease:
		return "PointerRelease"
	default:
		panic("unknown Kind")
	}
}

func (s Source) String() string {
	switch s {
	case Mouse:
		return "Mouse"
	case Touch:
		return "Touch"
	default:
		panic("unknown source")
	}
}
