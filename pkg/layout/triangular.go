package layout

import (
	"fmt"

	"github.com/matzehuels/atomgrid/pkg/errors"
	"github.com/matzehuels/atomgrid/pkg/pattern"
)

// DefaultTriangularRectSpacing is the spacing (in µm) used for
// triangular-rectangular lattices when none is given.
const DefaultTriangularRectSpacing = 5

// TriangularLattice is a register layout with a triangular lattice
// pattern filling a roughly hexagonal area, uniformly scaled by a single
// spacing.
type TriangularLattice struct {
	*Layout
	nTraps  int
	spacing float64
}

// NewTriangularLattice builds a layout of nTraps points of the hex-fill
// triangular pattern, scaled by spacing µm.
func NewTriangularLattice(nTraps int, spacing float64) *TriangularLattice {
	traps := scaled(pattern.TriangularHex(nTraps), spacing, spacing)
	slug := fmt.Sprintf("TriangularLattice(%d, %gµm)", nTraps, spacing)
	return &TriangularLattice{
		Layout:  NewLayout(slug, traps),
		nTraps:  nTraps,
		spacing: spacing,
	}
}

// Spacing returns the lattice spacing in µm.
func (l *TriangularLattice) Spacing() float64 { return l.spacing }

// Spec returns the reconstruction parameters of the lattice.
func (l *TriangularLattice) Spec() Spec {
	return Spec{Kind: KindTriangularHex, NTraps: l.nTraps, Spacing: l.spacing}
}

// HexagonalRegister carves a register with a hexagonal shape of nAtoms
// atoms. The points are the first nAtoms of the same hex-fill generator
// the layout was built with — recomputed from the geometry, not sliced
// from the stored traps — then scaled and resolved to trap identities.
func (l *TriangularLattice) HexagonalRegister(nAtoms int, prefix string) (*Register, error) {
	if nAtoms > l.NumTraps() {
		return nil, errors.New(errors.ErrCodeShapeExceedsCapacity,
			"the desired register has more atoms (%d) than there are traps in this triangular lattice (%d)",
			nAtoms, l.NumTraps())
	}
	points := scaled(pattern.TriangularHex(nAtoms), l.spacing, l.spacing)
	return l.RegisterFromCoordinates(points, prefix)
}

// RectangularRegister carves a register of rows × atomsPerRow atoms
// arranged as a rectangular cut of the triangular lattice. Note the
// distinct generator: rectangular cuts come from the rect-fill pattern,
// not from the hex-fill pattern used by [TriangularLattice.HexagonalRegister].
// The capacity check is on atom count only; a cut whose corners fall
// outside the hexagonal trap area fails during trap resolution.
func (l *TriangularLattice) RectangularRegister(rows, atomsPerRow int, prefix string) (*Register, error) {
	if rows*atomsPerRow > l.NumTraps() {
		return nil, errors.New(errors.ErrCodeShapeExceedsCapacity,
			"a '%dx%d' rectangular subset of a triangular lattice has more atoms than there are traps in this layout (%d)",
			rows, atomsPerRow, l.NumTraps())
	}
	points := scaled(pattern.TriangularRect(rows, atomsPerRow), l.spacing, l.spacing)
	return l.RegisterFromCoordinates(points, prefix)
}

// TriangularRectLattice is a register layout with a triangular lattice
// pattern directly filling a rectangular boundary. It has no
// shape-specific carving methods; use the generic
// [Layout.RegisterFromCoordinates].
type TriangularRectLattice struct {
	*Layout
	rows, columns int
	spacing       float64
}

// NewTriangularRectLattice builds a rows × columns triangular lattice
// scaled by spacing µm (typically [DefaultTriangularRectSpacing]).
func NewTriangularRectLattice(rows, columns int, spacing float64) *TriangularRectLattice {
	traps := scaled(pattern.TriangularRect(rows, columns), spacing, spacing)
	slug := fmt.Sprintf("TriangularRectLattice(%dx%d, %gµm)", rows, columns, spacing)
	return &TriangularRectLattice{
		Layout:  NewLayout(slug, traps),
		rows:    rows,
		columns: columns,
		spacing: spacing,
	}
}

// Spec returns the reconstruction parameters of the lattice.
func (l *TriangularRectLattice) Spec() Spec {
	return Spec{Kind: KindTriangularRect, Rows: l.rows, Columns: l.columns, Spacing: l.spacing}
}
