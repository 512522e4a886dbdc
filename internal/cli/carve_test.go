package cli

import (
	"path/filepath"
	"testing"

	"github.com/matzehuels/atomgrid/pkg/errors"
	"github.com/matzehuels/atomgrid/pkg/layout"
)

func TestCarveShape(t *testing.T) {
	tests := []struct {
		name    string
		opts    carveOpts
		want    string
		wantErr bool
	}{
		{name: "square", opts: carveOpts{square: 3}, want: "3x3 square"},
		{name: "rectangle", opts: carveOpts{rows: 2, columns: 4}, want: "2x4 rectangle"},
		{name: "hexagon", opts: carveOpts{hex: 19}, want: "19-atom hexagon"},
		{name: "explicit", opts: carveOpts{traps: "0,1,2"}, want: "explicit traps"},
		{name: "nothing selected", opts: carveOpts{}, wantErr: true},
		{name: "rows without columns", opts: carveOpts{rows: 2}, wantErr: true},
		{name: "two modes", opts: carveOpts{square: 2, hex: 7}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := carveShape(&tt.opts)
			if tt.wantErr {
				if err == nil {
					t.Fatal("carveShape() should fail")
				}
				if errors.GetCode(err) != errors.ErrCodeInvalidInput {
					t.Errorf("code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidInput)
				}
				return
			}
			if err != nil {
				t.Fatalf("carveShape() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("carveShape() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCarveRegisterSquareLattice(t *testing.T) {
	l := layout.NewSquareLattice(4, 4, 5)

	t.Run("square", func(t *testing.T) {
		reg, err := carveRegister(l, &carveOpts{square: 2, prefix: "q"})
		if err != nil {
			t.Fatalf("carveRegister() error = %v", err)
		}
		if reg.Len() != 4 {
			t.Errorf("atoms = %d, want 4", reg.Len())
		}
	})

	t.Run("rectangle", func(t *testing.T) {
		reg, err := carveRegister(l, &carveOpts{rows: 2, columns: 3, prefix: "q"})
		if err != nil {
			t.Fatalf("carveRegister() error = %v", err)
		}
		if reg.Len() != 6 {
			t.Errorf("atoms = %d, want 6", reg.Len())
		}
	})

	t.Run("hex rejected", func(t *testing.T) {
		_, err := carveRegister(l, &carveOpts{hex: 7, prefix: "q"})
		if err == nil {
			t.Fatal("hex carve on a rectangular lattice should fail")
		}
		if errors.GetCode(err) != errors.ErrCodeInvalidInput {
			t.Errorf("code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidInput)
		}
	})
}

func TestCarveRegisterTriangularLattice(t *testing.T) {
	l := layout.NewTriangularLattice(61, 5)

	reg, err := carveRegister(l, &carveOpts{hex: 19, prefix: "q"})
	if err != nil {
		t.Fatalf("carveRegister() error = %v", err)
	}
	if reg.Len() != 19 {
		t.Errorf("atoms = %d, want 19", reg.Len())
	}
}

func TestCarveExplicit(t *testing.T) {
	l := layout.NewSquareLattice(3, 3, 5)

	reg, err := carveExplicit(l, "0, 4, 8", "atom")
	if err != nil {
		t.Fatalf("carveExplicit() error = %v", err)
	}
	if reg.Len() != 3 {
		t.Fatalf("atoms = %d, want 3", reg.Len())
	}
	if ids := reg.QubitIDs(); ids[0] != "atom0" || ids[2] != "atom2" {
		t.Errorf("qubit IDs = %v, want atom0..atom2", ids)
	}

	t.Run("bad trap ID", func(t *testing.T) {
		_, err := carveExplicit(l, "0,x", "q")
		if err == nil {
			t.Fatal("carveExplicit() should reject non-numeric IDs")
		}
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := carveExplicit(l, "0,99", "q")
		if err == nil {
			t.Fatal("carveExplicit() should reject out-of-range IDs")
		}
	})
}

func TestRunCarve(t *testing.T) {
	dir := t.TempDir()
	layoutPath := filepath.Join(dir, "layout.json")
	doc := layout.NewDocument(layout.NewSquareLattice(4, 4, 5))
	if err := layout.WriteDocumentFile(doc, layoutPath); err != nil {
		t.Fatal(err)
	}

	registerPath := filepath.Join(dir, "register.json")
	opts := carveOpts{square: 2, prefix: "q", output: registerPath}
	if err := runCarve(quietContext(t), layoutPath, &opts); err != nil {
		t.Fatalf("runCarve() error = %v", err)
	}

	reg, err := readRegisterFile(registerPath)
	if err != nil {
		t.Fatalf("readRegisterFile() error = %v", err)
	}
	if reg.Len() != 4 {
		t.Errorf("atoms = %d, want 4", reg.Len())
	}
}

func TestRunCarveInvalidPrefix(t *testing.T) {
	opts := carveOpts{square: 2, prefix: "q1"}
	err := runCarve(quietContext(t), "ignored.json", &opts)
	if err == nil {
		t.Fatal("runCarve() should reject a prefix ending in a digit")
	}
	if errors.GetCode(err) != errors.ErrCodeInvalidInput {
		t.Errorf("code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidInput)
	}
}
