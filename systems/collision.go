package systems

import (
	"math"

	"github.com/automoto/wallhop/motion"
	"github.com/automoto/wallhop/tags"
	"github.com/solarlune/resolv"
	dmath "github.com/yohamta/donburi/features/math"
)

// spaceCollider adapts a resolv space to the motion.Collider interface. The
// body's box is mirrored onto the wrapped object before each query so the
// space reports the cells the body actually occupies, then the exact stop
// distances are computed from the candidate objects' rectangles.
type spaceCollider struct {
	obj *resolv.Object
}

func newSpaceCollider(obj *resolv.Object) spaceCollider {
	return spaceCollider{obj: obj}
}

func (c spaceCollider) Sweep(box motion.AABB, delta dmath.Vec2) (dmath.Vec2, motion.Contact) {
	var moved dmath.Vec2
	var contact motion.Contact
	if delta.X != 0 {
		var hit motion.Contact
		moved.X, hit = c.stepX(box, delta.X)
		contact |= hit
		box.X += moved.X
	}
	if delta.Y != 0 {
		var hit motion.Contact
		moved.Y, hit = c.stepY(box, delta.Y)
		contact |= hit
	}
	return moved, contact
}

func (c spaceCollider) Probe(box motion.AABB, distance float64) motion.Contact {
	var contact motion.Contact
	if _, hit := c.stepX(box, -distance); hit.Has(motion.ContactLeft) {
		contact |= motion.ContactLeft
	}
	if _, hit := c.stepX(box, distance); hit.Has(motion.ContactRight) {
		contact |= motion.ContactRight
	}
	return contact
}

// stepX walks the box horizontally in slices no wider than a cell, so the
// cellular check can never pass over a thin wall however large dx is.
func (c spaceCollider) stepX(box motion.AABB, dx float64) (float64, motion.Contact) {
	limit := float64(c.obj.Space.CellWidth)
	moved := 0.0
	for {
		step := motion.Clamp(dx-moved, -limit, limit)
		if step == 0 {
			return moved, 0
		}
		got, hit := c.sweepX(box, step)
		moved += got
		box.X += got
		if hit.Any() {
			return moved, hit
		}
	}
}

// stepY is the vertical counterpart of stepX.
func (c spaceCollider) stepY(box motion.AABB, dy float64) (float64, motion.Contact) {
	limit := float64(c.obj.Space.CellHeight)
	moved := 0.0
	for {
		step := motion.Clamp(dy-moved, -limit, limit)
		if step == 0 {
			return moved, 0
		}
		got, hit := c.sweepY(box, step)
		moved += got
		box.Y += got
		if hit.Any() {
			return moved, hit
		}
	}
}

// sweepX moves the box horizontally by up to dx, stopping flush against the
// nearest solid whose vertical span overlaps the box.
func (c spaceCollider) sweepX(box motion.AABB, dx float64) (float64, motion.Contact) {
	if dx == 0 {
		return 0, 0
	}
	c.place(box)
	check := c.obj.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		return dx, 0
	}

	allowed := dx
	for _, solid := range check.Objects {
		if solid.Y >= box.Y+box.H || solid.Y+solid.H <= box.Y {
			continue
		}
		if dx > 0 {
			if solid.X+solid.W <= box.X+box.W {
				continue // behind the leading edge
			}
			gap := math.Max(solid.X-(box.X+box.W), 0)
			allowed = math.Min(allowed, gap)
		} else {
			if solid.X >= box.X {
				continue
			}
			gap := math.Min(solid.X+solid.W-box.X, 0)
			allowed = math.Max(allowed, gap)
		}
	}

	if allowed == dx {
		return dx, 0
	}
	if dx > 0 {
		return allowed, motion.ContactRight
	}
	return allowed, motion.ContactLeft
}

// sweepY is the vertical counterpart of sweepX.
func (c spaceCollider) sweepY(box motion.AABB, dy float64) (float64, motion.Contact) {
	if dy == 0 {
		return 0, 0
	}
	c.place(box)
	check := c.obj.Check(0, dy, tags.ResolvSolid)
	if check == nil {
		return dy, 0
	}

	allowed := dy
	for _, solid := range check.Objects {
		if solid.X >= box.X+box.W || solid.X+solid.W <= box.X {
			continue
		}
		if dy > 0 {
			if solid.Y+solid.H <= box.Y+box.H {
				continue
			}
			gap := math.Max(solid.Y-(box.Y+box.H), 0)
			allowed = math.Min(allowed, gap)
		} else {
			if solid.Y >= box.Y {
				continue
			}
			gap := math.Min(solid.Y+solid.H-box.Y, 0)
			allowed = math.Max(allowed, gap)
		}
	}

	if allowed == dy {
		return dy, 0
	}
	if dy > 0 {
		return allowed, motion.ContactBottom
	}
	return allowed, motion.ContactTop
}

// place mirrors the box onto the wrapped object and refreshes its cells so
// Check sees candidates around the box's true position.
func (c spaceCollider) place(box motion.AABB) {
	c.obj.X = box.X
	c.obj.Y = box.Y
	c.obj.Update()
}
