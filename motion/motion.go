// Package motion implements the player kinematic controller: a fixed-timestep
// state transition that turns per-tick input intents into movement against
// static level geometry. It has no dependencies on ebitengine or resolv —
// collision queries go through the Collider interface so the controller can be
// driven headless in tests.
package motion

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// State is the locomotion state of a body. A body is always in exactly one.
type State uint8

const (
	StateAirborne State = iota
	StateGrounded
	StateSliding
)

func (s State) String() string {
	switch s {
	case StateGrounded:
		return "grounded"
	case StateSliding:
		return "sliding"
	default:
		return "airborne"
	}
}

// WallSide names the wall a body is in contact with, relative to the body.
type WallSide int8

const (
	WallNone WallSide = iota
	WallLeft
	WallRight
)

func (w WallSide) String() string {
	switch w {
	case WallLeft:
		return "left"
	case WallRight:
		return "right"
	default:
		return "none"
	}
}

// Contact is a bitset of body edges touching geometry.
type Contact uint8

const (
	ContactLeft Contact = 1 << iota
	ContactRight
	ContactTop
	ContactBottom
)

// Has reports whether all edges in c are present.
func (c Contact) Has(edges Contact) bool { return c&edges == edges }

// Any reports whether any edge is present.
func (c Contact) Any() bool { return c != 0 }

// AABB is an axis-aligned box, top-left anchored, y-down.
type AABB struct {
	X, Y, W, H float64
}

// Collider answers collision queries against static level geometry.
//
// Sweep takes the current box and an intended displacement and returns the
// corrected displacement (stopping flush at the first obstruction) together
// with the contacted edges. Callers sweep one axis at a time; contacts are
// only reported in the direction of motion.
//
// Probe reports walls within distance to the left or right of the box
// without moving it. Used to keep wall contact alive while sliding and to
// detect the both-sides squeeze case.
type Collider interface {
	Sweep(box AABB, delta dmath.Vec2) (dmath.Vec2, Contact)
	Probe(box AABB, distance float64) Contact
}

// WallProbeDistance is how close a wall must be to count as contact for
// wall-slide maintenance.
const WallProbeDistance = 1.0
