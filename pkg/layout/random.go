package layout

import (
	"fmt"
	"math/rand/v2"

	"github.com/matzehuels/atomgrid/pkg/errors"
	"github.com/matzehuels/atomgrid/pkg/pattern"
)

// Default parameters for random layout generation.
const (
	DefaultRandomRadius     = 35.0 // working-area radius in µm
	DefaultRandomMinSpacing = 5.0  // minimum pairwise trap distance in µm
	DefaultRandomMaxIter    = 1000 // candidate draw budget
)

// RandomConfig configures random layout generation. The zero value is not
// usable; start from [DefaultRandomConfig] and override fields. MaxIter is
// taken literally: a zero budget fails for any positive trap count.
type RandomConfig struct {
	Radius     float64 // working-area radius in µm
	MinSpacing float64 // minimum pairwise trap distance in µm
	MaxIter    int     // maximum number of candidate draws

	// Rand is the random source consumed during packing. A nil Rand falls
	// back to the process-global source; reproducibility is then the
	// caller's responsibility. A shared source must not be mutated
	// concurrently while a layout is being built.
	Rand *rand.Rand
}

// DefaultRandomConfig returns the standard packing parameters.
func DefaultRandomConfig() RandomConfig {
	return RandomConfig{
		Radius:     DefaultRandomRadius,
		MinSpacing: DefaultRandomMinSpacing,
		MaxIter:    DefaultRandomMaxIter,
	}
}

// RandomLayout is a register layout of randomly packed traps: points
// sampled uniformly inside a disk, subject to a minimum pairwise spacing.
// The sampled points are fixed at construction and never resampled.
type RandomLayout struct {
	*Layout
	spec Spec
}

// NewRandomLayout packs nTraps points inside the disk of cfg.Radius by
// rejection sampling: each candidate is drawn uniformly from the
// enclosing square and accepted only if it falls inside the disk and its
// distance to every accepted point exceeds cfg.MinSpacing. Sampling stops
// after nTraps acceptances or cfg.MaxIter draws, whichever comes first;
// falling short fails with RANDOM_PACKING_FAILED and constructs nothing.
func NewRandomLayout(nTraps int, cfg RandomConfig) (*RandomLayout, error) {
	if nTraps < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "trap count cannot be negative: %d", nTraps)
	}
	pts := make([]pattern.Point, 0, nTraps)
	for i := 0; i < cfg.MaxIter && len(pts) < nTraps; i++ {
		candidate := pattern.Point{
			X: uniform(cfg.Rand, -cfg.Radius, cfg.Radius),
			Y: uniform(cfg.Rand, -cfg.Radius, cfg.Radius),
		}
		if candidate.X*candidate.X+candidate.Y*candidate.Y > cfg.Radius*cfg.Radius {
			continue
		}
		accept := true
		for _, p := range pts {
			if candidate.DistanceTo(p) <= cfg.MinSpacing {
				accept = false
				break
			}
		}
		if accept {
			pts = append(pts, candidate)
		}
	}
	if len(pts) < nTraps {
		return nil, errors.New(errors.ErrCodeRandomPacking,
			"placed %d of %d traps within %d iterations", len(pts), nTraps, cfg.MaxIter)
	}
	slug := fmt.Sprintf("RandomLayout(%d traps, min spacing %gµm)", nTraps, cfg.MinSpacing)
	return &RandomLayout{
		Layout: NewLayout(slug, pts),
		spec: Spec{
			Kind:       KindRandom,
			NTraps:     nTraps,
			Radius:     cfg.Radius,
			MinSpacing: cfg.MinSpacing,
			MaxIter:    cfg.MaxIter,
		},
	}, nil
}

// Spec returns the packing parameters. Rebuilding from a Spec without a
// seed reproduces the layout only statistically, not point-for-point; use
// a [Document] to persist the realized coordinates.
func (l *RandomLayout) Spec() Spec { return l.spec }

func uniform(r *rand.Rand, lo, hi float64) float64 {
	f := 0.0
	if r != nil {
		f = r.Float64()
	} else {
		f = rand.Float64()
	}
	return lo + f*(hi-lo)
}
