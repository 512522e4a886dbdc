package pattern

import (
	"math"
	"sort"
)

// RowHeight is the vertical distance between consecutive rows of a
// unit-spacing triangular lattice (√3/2).
var RowHeight = math.Sqrt(3) / 2

// Point is a 2D coordinate in layout space. Unscaled pattern points use
// unit spacing; layouts multiply them by physical spacings in µm.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Scale returns the point with X multiplied by fx and Y by fy.
func (p Point) Scale(fx, fy float64) Point {
	return Point{X: p.X * fx, Y: p.Y * fy}
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// SquareRect returns a rows × columns grid with unit spacing, centered on
// the origin by whole-unit offsets. Points are emitted row-major, lowest
// row first. A non-positive dimension yields an empty slice.
//
// Centering uses integer offsets rather than the true centroid so that
// SquareRect(r, c) is a subset of SquareRect(R, C) whenever r ≤ R and
// c ≤ C, which register carving relies on.
func SquareRect(rows, columns int) []Point {
	if rows <= 0 || columns <= 0 {
		return nil
	}
	x0 := -((columns - 1) / 2)
	y0 := -((rows - 1) / 2)
	points := make([]Point, 0, rows*columns)
	for r := 0; r < rows; r++ {
		for c := 0; c < columns; c++ {
			points = append(points, Point{X: float64(c + x0), Y: float64(r + y0)})
		}
	}
	return points
}

// TriangularRect returns a triangular lattice clipped to a rectangular
// boundary of rows × columns points, centered on the origin by whole
// lattice offsets. Odd lattice rows are shifted by half a unit, rows are
// √3/2 apart, and points are emitted row-major, lowest row first.
func TriangularRect(rows, columns int) []Point {
	if rows <= 0 || columns <= 0 {
		return nil
	}
	j0 := -((rows - 1) / 2)
	c0 := -((columns - 1) / 2)
	points := make([]Point, 0, rows*columns)
	for r := 0; r < rows; r++ {
		j := r + j0
		for c := 0; c < columns; c++ {
			points = append(points, latticePoint(c+c0, j))
		}
	}
	return points
}

// TriangularHex returns the first n points of the triangular lattice
// enumerated by increasing distance from the origin, covering a roughly
// hexagonal area. The enumeration order is independent of n, so
// TriangularHex(m) is a prefix of TriangularHex(n) for all m ≤ n.
// A non-positive n yields an empty slice.
func TriangularHex(n int) []Point {
	if n <= 0 {
		return nil
	}
	// A window of half-width ⌈√n⌉+2 always contains the n lattice points
	// nearest the origin (the disk holding n points has radius ≈ 0.53√n).
	half := int(math.Ceil(math.Sqrt(float64(n)))) + 2
	points := make([]Point, 0, (2*half+1)*(2*half+1))
	for j := -half; j <= half; j++ {
		for c := -half; c <= half; c++ {
			points = append(points, latticePoint(c, j))
		}
	}
	sort.Slice(points, func(a, b int) bool {
		da := points[a].X*points[a].X + points[a].Y*points[a].Y
		db := points[b].X*points[b].X + points[b].Y*points[b].Y
		if da != db {
			return da < db
		}
		if points[a].Y != points[b].Y {
			return points[a].Y < points[b].Y
		}
		return points[a].X < points[b].X
	})
	return points[:n:n]
}

// latticePoint maps integer lattice coordinates (column c, row j) to the
// canonical unit triangular lattice: odd rows shift right by half a unit.
func latticePoint(c, j int) Point {
	shift := 0.0
	if ((j%2)+2)%2 == 1 {
		shift = 0.5
	}
	return Point{X: float64(c) + shift, Y: float64(j) * RowHeight}
}
