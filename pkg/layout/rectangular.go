package layout

import (
	"fmt"

	"github.com/matzehuels/atomgrid/pkg/errors"
	"github.com/matzehuels/atomgrid/pkg/pattern"
)

// RectangularLattice is a register layout with a rectangular lattice
// pattern: rows × columns traps spaced by independent horizontal and
// vertical distances.
//
// A square lattice is the same builder with both spacings fixed equal
// (see [NewSquareLattice]); it differs only in slug and serialized
// parameter set, not in behavior.
type RectangularLattice struct {
	*Layout
	rows, columns      int
	xSpacing, ySpacing float64
	spec               Spec
}

// NewRectangularLattice builds a rows × columns lattice with x
// coordinates spaced by xSpacing µm and y coordinates by ySpacing µm.
// Spacings may be any real value, including zero or negative.
func NewRectangularLattice(rows, columns int, xSpacing, ySpacing float64) *RectangularLattice {
	traps := scaled(pattern.SquareRect(rows, columns), xSpacing, ySpacing)
	slug := fmt.Sprintf("RectangularLattice(%dx%d, %gx%gµm)", rows, columns, xSpacing, ySpacing)
	return &RectangularLattice{
		Layout:   NewLayout(slug, traps),
		rows:     rows,
		columns:  columns,
		xSpacing: xSpacing,
		ySpacing: ySpacing,
		spec: Spec{
			Kind:     KindRectangular,
			Rows:     rows,
			Columns:  columns,
			XSpacing: xSpacing,
			YSpacing: ySpacing,
		},
	}
}

// NewSquareLattice builds a rows × columns lattice with one uniform
// spacing. Trap coordinates are identical to
// NewRectangularLattice(rows, columns, spacing, spacing).
func NewSquareLattice(rows, columns int, spacing float64) *RectangularLattice {
	l := NewRectangularLattice(rows, columns, spacing, spacing)
	l.slug = fmt.Sprintf("SquareLattice(%dx%d, %gµm)", rows, columns, spacing)
	l.spec = Spec{
		Kind:    KindSquare,
		Rows:    rows,
		Columns: columns,
		Spacing: spacing,
	}
	return l
}

// Rows returns the number of trap rows.
func (l *RectangularLattice) Rows() int { return l.rows }

// Columns returns the number of trap columns.
func (l *RectangularLattice) Columns() int { return l.columns }

// Spec returns the reconstruction parameters of the lattice.
func (l *RectangularLattice) Spec() Spec { return l.spec }

// SquareRegister carves a register with a square shape of side × side
// atoms. Qubit IDs are "{prefix}{0..side²-1}" in generation order.
func (l *RectangularLattice) SquareRegister(side int, prefix string) (*Register, error) {
	return l.RectangularRegister(side, side, prefix)
}

// RectangularRegister carves a register with a rectangular shape. The
// requested shape must fit inside the lattice; the sub-grid is
// regenerated, scaled like the lattice itself, and resolved against the
// stored traps. Qubit IDs are "{prefix}{0..N-1}" in generation order.
func (l *RectangularLattice) RectangularRegister(rows, columns int, prefix string) (*Register, error) {
	if rows > l.rows || columns > l.columns {
		return nil, errors.New(errors.ErrCodeShapeExceedsCapacity,
			"a '%dx%d' array doesn't fit a %dx%d rectangular lattice",
			rows, columns, l.rows, l.columns)
	}
	points := scaled(pattern.SquareRect(rows, columns), l.xSpacing, l.ySpacing)
	return l.RegisterFromCoordinates(points, prefix)
}
