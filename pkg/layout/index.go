package layout

import (
	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/matzehuels/atomgrid/pkg/pattern"
)

// trapPoint is a kdtree.Comparable carrying the trap's stable index.
type trapPoint struct {
	pattern.Point
	id int
}

// Compare returns the signed distance of p from the plane through q along
// dimension d.
func (p trapPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(trapPoint)
	switch d {
	case 0:
		return p.X - q.X
	case 1:
		return p.Y - q.Y
	default:
		panic("layout: illegal dimension")
	}
}

// Dims returns the number of dimensions described by the point.
func (p trapPoint) Dims() int { return 2 }

// Distance returns the squared Euclidean distance between p and c.
func (p trapPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(trapPoint)
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// trapPoints implements kdtree.Interface over a slice of trapPoint.
type trapPoints []trapPoint

func (p trapPoints) Index(i int) kdtree.Comparable         { return p[i] }
func (p trapPoints) Len() int                               { return len(p) }
func (p trapPoints) Slice(start, end int) kdtree.Interface { return p[start:end] }
func (p trapPoints) Pivot(d kdtree.Dim) int {
	return trapPlane{trapPoints: p, Dim: d}.Pivot()
}

// trapPlane implements kdtree.SortSlicer for pivot selection.
type trapPlane struct {
	kdtree.Dim
	trapPoints
}

func (p trapPlane) Less(i, j int) bool {
	switch p.Dim {
	case 0:
		return p.trapPoints[i].X < p.trapPoints[j].X
	case 1:
		return p.trapPoints[i].Y < p.trapPoints[j].Y
	default:
		panic("layout: illegal dimension")
	}
}

func (p trapPlane) Pivot() int {
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}

func (p trapPlane) Slice(start, end int) kdtree.SortSlicer {
	p.trapPoints = p.trapPoints[start:end]
	return p
}

func (p trapPlane) Swap(i, j int) {
	p.trapPoints[i], p.trapPoints[j] = p.trapPoints[j], p.trapPoints[i]
}

// trapIndex resolves requested coordinates to trap identities. The k-d
// tree is built once at layout construction; lookups accept the nearest
// trap only when it lies within the configured absolute tolerance.
type trapIndex struct {
	tree *kdtree.Tree
	tol  float64
}

func newTrapIndex(traps []pattern.Point, tol float64) *trapIndex {
	ix := &trapIndex{tol: tol}
	if len(traps) == 0 {
		return ix
	}
	pts := make(trapPoints, len(traps))
	for i, p := range traps {
		pts[i] = trapPoint{Point: p, id: i}
	}
	ix.tree = kdtree.New(pts, false)
	return ix
}

// Nearest returns the ID of the trap at p, or false when no trap lies
// within the tolerance.
func (ix *trapIndex) Nearest(p pattern.Point) (int, bool) {
	if ix.tree == nil {
		return 0, false
	}
	got, dist2 := ix.tree.Nearest(trapPoint{Point: p})
	if got == nil || dist2 > ix.tol*ix.tol {
		return 0, false
	}
	return got.(trapPoint).id, true
}
