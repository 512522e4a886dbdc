package layout

import (
	"encoding/json"

	"github.com/matzehuels/atomgrid/pkg/pattern"
)

// Atom pairs a qubit identifier with the trap it occupies.
type Atom struct {
	ID   string        `json:"id"`
	Trap int           `json:"trap"`
	Pos  pattern.Point `json:"pos"`
}

// Register is an immutable subset of a layout's traps, each assigned a
// qubit identifier. A register is an independent result object: it keeps
// the trap coordinates it was carved with and no reference to its layout.
type Register struct {
	atoms []Atom
}

// Len returns the number of atoms in the register.
func (r *Register) Len() int { return len(r.atoms) }

// Atoms returns a copy of the register's atoms in qubit-ID order.
func (r *Register) Atoms() []Atom {
	out := make([]Atom, len(r.atoms))
	copy(out, r.atoms)
	return out
}

// QubitIDs returns the qubit identifiers in assignment order.
func (r *Register) QubitIDs() []string {
	ids := make([]string, len(r.atoms))
	for i, a := range r.atoms {
		ids[i] = a.ID
	}
	return ids
}

// Coordinates returns the trap coordinates in qubit-ID order.
func (r *Register) Coordinates() []pattern.Point {
	pts := make([]pattern.Point, len(r.atoms))
	for i, a := range r.atoms {
		pts[i] = a.Pos
	}
	return pts
}

// MarshalJSON serializes the register as its atom list.
func (r *Register) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.atoms)
}

// UnmarshalJSON restores a register from an atom list.
func (r *Register) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &r.atoms)
}
