package layout

import (
	"fmt"

	"github.com/matzehuels/atomgrid/pkg/errors"
	"github.com/matzehuels/atomgrid/pkg/pattern"
)

// DefaultTolerance is the absolute coordinate tolerance (in µm) used when
// resolving requested coordinates against stored traps. Carving methods
// regenerate sub-patterns with the same scaling arithmetic the layout was
// built with, so matches are normally bit-exact; the tolerance absorbs
// float drift in coordinates that arrive from serialized documents.
const DefaultTolerance = 1e-6

// Layout is an immutable, named collection of trap coordinates. Traps are
// identified by their index in generation order. Layout is the shared base
// of every variant and also serves directly as the carving surface for
// variants without shape-specific register methods.
type Layout struct {
	slug  string
	traps []pattern.Point
	index *trapIndex
}

// NewLayout constructs a layout from trap coordinates and a descriptive
// slug. The coordinates are copied; the layout never changes afterwards.
func NewLayout(slug string, traps []pattern.Point) *Layout {
	copied := make([]pattern.Point, len(traps))
	copy(copied, traps)
	return &Layout{
		slug:  slug,
		traps: copied,
		index: newTrapIndex(copied, DefaultTolerance),
	}
}

// Slug returns the layout's descriptive label.
func (l *Layout) Slug() string { return l.slug }

// NumTraps returns the number of traps in the layout.
func (l *Layout) NumTraps() int { return len(l.traps) }

// Traps returns a copy of the trap coordinates in generation order.
func (l *Layout) Traps() []pattern.Point {
	out := make([]pattern.Point, len(l.traps))
	copy(out, l.traps)
	return out
}

// TrapsFromCoordinates resolves each point to the identity of the trap at
// those coordinates. A point with no trap within [DefaultTolerance] fails
// with TRAP_RESOLUTION_FAILED; nothing is resolved partially.
func (l *Layout) TrapsFromCoordinates(points ...pattern.Point) ([]int, error) {
	ids := make([]int, len(points))
	for i, p := range points {
		id, ok := l.index.Nearest(p)
		if !ok {
			return nil, errors.New(errors.ErrCodeTrapResolution,
				"no trap at coordinates (%g, %g) in %s", p.X, p.Y, l.slug)
		}
		ids[i] = id
	}
	return ids, nil
}

// DefineRegister builds a register assigning qubitIDs[i] to trapIDs[i].
// The two slices must have equal length and every trap ID must exist.
func (l *Layout) DefineRegister(trapIDs []int, qubitIDs []string) (*Register, error) {
	if len(trapIDs) != len(qubitIDs) {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"got %d trap IDs for %d qubit IDs", len(trapIDs), len(qubitIDs))
	}
	atoms := make([]Atom, len(trapIDs))
	for i, id := range trapIDs {
		if id < 0 || id >= len(l.traps) {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"trap ID %d out of range for %s (%d traps)", id, l.slug, len(l.traps))
		}
		atoms[i] = Atom{ID: qubitIDs[i], Trap: id, Pos: l.traps[id]}
	}
	return &Register{atoms: atoms}, nil
}

// RegisterFromCoordinates resolves points to traps and assigns qubit IDs
// "{prefix}{0..N-1}" in point order. This is the generic carving
// operation used by variants without shape-specific register methods.
func (l *Layout) RegisterFromCoordinates(points []pattern.Point, prefix string) (*Register, error) {
	trapIDs, err := l.TrapsFromCoordinates(points...)
	if err != nil {
		return nil, err
	}
	qubitIDs := make([]string, len(trapIDs))
	for i := range qubitIDs {
		qubitIDs[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return l.DefineRegister(trapIDs, qubitIDs)
}

// scaled returns points with X scaled by fx and Y by fy.
func scaled(points []pattern.Point, fx, fy float64) []pattern.Point {
	out := make([]pattern.Point, len(points))
	for i, p := range points {
		out[i] = p.Scale(fx, fy)
	}
	return out
}
