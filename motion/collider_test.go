package motion

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// gridCollider implements Collider over a rune map for tests: '#' is solid,
// anything else is open. Row 0 is the top of the level, cells are 16px.
// Sweeps are exact, stopping flush at the first solid tile.
type gridCollider struct {
	cell float64
	rows []string
}

func newGrid(rows ...string) *gridCollider {
	return &gridCollider{cell: 16, rows: rows}
}

func (g *gridCollider) solidAt(tx, ty int) bool {
	if ty < 0 || ty >= len(g.rows) {
		return false
	}
	if tx < 0 || tx >= len(g.rows[ty]) {
		return false
	}
	return g.rows[ty][tx] == '#'
}

// anySolidInColumn reports a solid tile in column tx overlapping the vertical
// span [y0, y1).
func (g *gridCollider) anySolidInColumn(tx int, y0, y1 float64) bool {
	for ty := int(math.Floor(y0 / g.cell)); ty <= int(math.Ceil(y1/g.cell))-1; ty++ {
		if g.solidAt(tx, ty) {
			return true
		}
	}
	return false
}

func (g *gridCollider) anySolidInRow(ty int, x0, x1 float64) bool {
	for tx := int(math.Floor(x0 / g.cell)); tx <= int(math.Ceil(x1/g.cell))-1; tx++ {
		if g.solidAt(tx, ty) {
			return true
		}
	}
	return false
}

func (g *gridCollider) Sweep(box AABB, delta dmath.Vec2) (dmath.Vec2, Contact) {
	switch {
	case delta.X > 0:
		edge := box.X + box.W
		for tx := int(math.Floor(edge / g.cell)); tx <= int(math.Floor((edge+delta.X)/g.cell)); tx++ {
			if !g.anySolidInColumn(tx, box.Y, box.Y+box.H) {
				continue
			}
			allowed := math.Max(float64(tx)*g.cell-edge, 0)
			if allowed < delta.X {
				return dmath.Vec2{X: allowed}, ContactRight
			}
		}
		return delta, 0
	case delta.X < 0:
		edge := box.X
		for tx := int(math.Floor((edge - 1e-9) / g.cell)); tx >= int(math.Floor((edge+delta.X)/g.cell)); tx-- {
			if !g.anySolidInColumn(tx, box.Y, box.Y+box.H) {
				continue
			}
			allowed := math.Min(float64(tx+1)*g.cell-edge, 0)
			if allowed > delta.X {
				return dmath.Vec2{X: allowed}, ContactLeft
			}
		}
		return delta, 0
	case delta.Y > 0:
		edge := box.Y + box.H
		for ty := int(math.Floor(edge / g.cell)); ty <= int(math.Floor((edge+delta.Y)/g.cell)); ty++ {
			if !g.anySolidInRow(ty, box.X, box.X+box.W) {
				continue
			}
			allowed := math.Max(float64(ty)*g.cell-edge, 0)
			if allowed < delta.Y {
				return dmath.Vec2{Y: allowed}, ContactBottom
			}
		}
		return delta, 0
	case delta.Y < 0:
		edge := box.Y
		for ty := int(math.Floor((edge - 1e-9) / g.cell)); ty >= int(math.Floor((edge+delta.Y)/g.cell)); ty-- {
			if !g.anySolidInRow(ty, box.X, box.X+box.W) {
				continue
			}
			allowed := math.Min(float64(ty+1)*g.cell-edge, 0)
			if allowed > delta.Y {
				return dmath.Vec2{Y: allowed}, ContactTop
			}
		}
		return delta, 0
	}
	return dmath.Vec2{}, 0
}

func (g *gridCollider) Probe(box AABB, distance float64) Contact {
	var c Contact
	if _, hit := g.Sweep(box, dmath.Vec2{X: -distance}); hit.Has(ContactLeft) {
		c |= ContactLeft
	}
	if _, hit := g.Sweep(box, dmath.Vec2{X: distance}); hit.Has(ContactRight) {
		c |= ContactRight
	}
	return c
}

// overlapsSolid reports whether the box intersects any solid tile. The span
// shrinks by a hair so flush contact does not count as overlap.
func (g *gridCollider) overlapsSolid(box AABB) bool {
	const skin = 1e-7
	y0, y1 := box.Y+skin, box.Y+box.H-skin
	for ty := int(math.Floor(y0 / g.cell)); ty <= int(math.Ceil(y1/g.cell))-1; ty++ {
		if g.anySolidInRow(ty, box.X+skin, box.X+box.W-skin) {
			return true
		}
	}
	return false
}
