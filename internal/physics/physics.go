// Package physics provides cell-grid footprint and overlap primitives.
package physics

// FootprintWidth is how many cells an actor covers horizontally.
// Actors are anchored at their leftmost cell and are one row tall.
const FootprintWidth = 2

// Point is an integer cell coordinate.
type Point struct {
	X, Y int
}

// Footprint returns the cells covered by an actor anchored at (x, y).
func Footprint(x, y int) [FootprintWidth]Point {
	var cells [FootprintWidth]Point
	for i := range cells {
		cells[i] = Point{X: x + i, Y: y}
	}
	return cells
}

// FootprintContains reports whether the cell (px, py) is covered by an
// actor anchored at (fx, fy).
func FootprintContains(fx, fy, px, py int) bool {
	return py == fy && px >= fx && px < fx+FootprintWidth
}

// FootprintsOverlap checks if two actors anchored at (ax, ay) and (bx, by)
// share at least one cell. The test is symmetric.
func FootprintsOverlap(ax, ay, bx, by int) bool {
	for _, c := range Footprint(ax, ay) {
		if FootprintContains(bx, by, c.X, c.Y) {
			return true
		}
	}
	return false
}

// SaturatingStep applies a -1/0/+1 delta to v without going below zero.
func SaturatingStep(v, delta int) int {
	v += delta
	if v < 0 {
		return 0
	}
	return v
}
