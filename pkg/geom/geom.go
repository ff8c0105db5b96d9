// Package geom provides the integer grid primitives shared by the
// routing algorithms and the boundary layers.
package geom

// Point is a location on the integer routing grid.
type Point struct {
	X int
	Y int
}

// Manhattan returns the Manhattan (L1) distance between two points:
// |ax-bx| + |ay-by|. It is commutative and satisfies the triangle
// inequality, which the cheapest-insertion router depends on.
func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
