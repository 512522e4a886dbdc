// Package manifest loads TOML manifests that declare layouts to generate
// in batch. A manifest holds one or more [[layouts]] tables, each naming a
// layout and carrying the reconstruction parameters of its kind:
//
//	[[layouts]]
//	name = "main-array"
//	kind = "square"
//	rows = 10
//	columns = 10
//	spacing = 5.0
//
//	[[layouts]]
//	name = "scratch"
//	kind = "random"
//	n_traps = 30
//	seed = 42
//
// Missing optional parameters are filled with the kind's defaults before
// validation, so a random entry only needs n_traps.
package manifest

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/atomgrid/pkg/errors"
	"github.com/matzehuels/atomgrid/pkg/layout"
)

// Entry is one declared layout: a unique name plus the Spec fields of its
// kind. Fields that do not apply to the declared kind are ignored.
type Entry struct {
	Name string `toml:"name"`

	Kind    string `toml:"kind"`
	Rows    int    `toml:"rows"`
	Columns int    `toml:"columns"`

	XSpacing float64 `toml:"x_spacing"`
	YSpacing float64 `toml:"y_spacing"`
	Spacing  float64 `toml:"spacing"`

	NTraps int `toml:"n_traps"`

	Radius     float64 `toml:"radius"`
	MinSpacing float64 `toml:"min_spacing"`
	MaxIter    int     `toml:"max_iter"`
	Seed       uint64  `toml:"seed"`
}

// Spec converts the entry to a layout Spec, applying kind defaults for
// parameters left unset.
func (e Entry) Spec() layout.Spec {
	s := layout.Spec{
		Kind:       layout.Kind(e.Kind),
		Rows:       e.Rows,
		Columns:    e.Columns,
		XSpacing:   e.XSpacing,
		YSpacing:   e.YSpacing,
		Spacing:    e.Spacing,
		NTraps:     e.NTraps,
		Radius:     e.Radius,
		MinSpacing: e.MinSpacing,
		MaxIter:    e.MaxIter,
		Seed:       e.Seed,
	}
	switch s.Kind {
	case layout.KindTriangularHex, layout.KindTriangularRect:
		if s.Spacing == 0 {
			s.Spacing = layout.DefaultTriangularRectSpacing
		}
	case layout.KindRandom:
		if s.Radius == 0 {
			s.Radius = layout.DefaultRandomRadius
		}
		if s.MinSpacing == 0 {
			s.MinSpacing = layout.DefaultRandomMinSpacing
		}
		if s.MaxIter == 0 {
			s.MaxIter = layout.DefaultRandomMaxIter
		}
	}
	return s
}

// Manifest is a parsed and validated layout manifest.
type Manifest struct {
	Layouts []Entry `toml:"layouts"`
}

// Load reads and parses a manifest file, then validates it.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
	}
	return Parse(data)
}

// Parse parses manifest bytes and validates every entry.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse manifest")
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	if len(m.Layouts) == 0 {
		return errors.New(errors.ErrCodeInvalidManifest, "manifest declares no layouts")
	}
	seen := make(map[string]bool, len(m.Layouts))
	for _, e := range m.Layouts {
		if err := errors.ValidateLayoutName(e.Name); err != nil {
			return err
		}
		if seen[e.Name] {
			return errors.New(errors.ErrCodeInvalidManifest, "duplicate layout name %q", e.Name)
		}
		seen[e.Name] = true
		if !knownKind(layout.Kind(e.Kind)) {
			return errors.New(errors.ErrCodeInvalidManifest,
				"layout %q declares unknown kind %q", e.Name, e.Kind)
		}
	}
	return nil
}

func knownKind(k layout.Kind) bool {
	for _, known := range layout.Kinds() {
		if k == known {
			return true
		}
	}
	return false
}
