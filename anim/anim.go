// SPDX-License-Identifier: Unlicense OR MIT

/*
Package anim animates numeric properties over time.

Animator is the capability a side panel needs from its host: run a
set of property tracks in parallel over a duration and signal their
common completion. Group implements Animator for hosts with a frame
clock; the host calls Tick once per frame while the group is active.
*/
package anim

import (
	"time"
)

// Curve maps linear progress in [0, 1] to eased progress.
type Curve func(t float32) float32

// Track animates a single property from From to To.
type Track struct {
	From, To float32
	// Set is called with every interpolated value,
	// ending with To.
	Set func(v float32)
}

// Animator runs tracks in parallel over d, shaping progress with
// c, and calls done once all tracks have reached their target.
type Animator interface {
	Animate(d time.Duration, c Curve, tracks []Track, done func())
}

// Group is an Animator driven by explicit calls to Tick. At most
// one animation runs at a time; Animate replaces a running one
// without calling its done function.
type Group struct {
	started bool
	start   time.Time
	dur     time.Duration
	curve   Curve
	tracks  []Track
	done    func()
	active  bool
}

// Linear is the identity Curve.
func Linear(t float32) float32 {
	return t
}

// Animate implements Animator. The animation starts at the next
// call to Tick.
func (g *Group) Animate(d time.Duration, c Curve, tracks []Track, done func()) {
	g.started = false
	g.dur = d
	g.curve = c
	g.tracks = append(g.tracks[:0], tracks...)
	g.done = done
	g.active = true
}

// Active reports whether an animation is in progress.
func (g *Group) Active() bool {
	return g.active
}

// Tick advances the animation to now, and reports whether the
// group is still active afterwards. The done function of a
// finished animation runs after the group is reset, so it may
// start another animation.
func (g *Group) Tick(now time.Time) bool {
	if !g.active {
		return false
	}
	if !g.started {
		g.start = now
		g.started = true
	}
	t := float32(1)
	if el := now.Sub(g.start); el < g.dur {
		t = float32(el) / float32(g.dur)
	}
	if t < 1 {
		v := t
		if g.curve != nil {
			v = g.curve(t)
		}
		for _, tr := range g.tracks {
			tr.Set(tr.From + (tr.To-tr.From)*v)
		}
		return true
	}
	for _, tr := range g.tracks {
		tr.Set(tr.To)
	}
	done := g.done
	g.tracks = g.tracks[:0]
	g.done = nil
	g.active = false
	if done != nil {
		done()
	}
	return g.active
}

// Immediate is an Animator without a clock: it sets every track
// to its target and calls done before Animate returns.
type Immediate struct{}

// Animate implements Animator.
func (Immediate) Animate(d time.Duration, c Curve, tracks []Track, done func()) {
	for _, tr := range tracks {
		tr.Set(tr.To)
	}
	if done != nil {
		done()
	}
}
