package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/atomgrid/pkg/layout"
	"github.com/matzehuels/atomgrid/pkg/manifest"
	"github.com/matzehuels/atomgrid/pkg/observability"
)

// generateOpts holds the command-line flags for the generate command.
// A generate run either builds a single layout from flags or a batch of
// layouts from a TOML manifest.
type generateOpts struct {
	kind       string  // layout kind: rectangular, square, triangular_hex, triangular_rect, random
	rows       int     // grid rows
	columns    int     // grid columns
	xSpacing   float64 // column spacing in µm (rectangular)
	ySpacing   float64 // row spacing in µm (rectangular)
	spacing    float64 // uniform spacing in µm (square, triangular)
	traps      int     // trap count (triangular_hex, random)
	radius     float64 // disk radius in µm (random)
	minSpacing float64 // minimum pairwise distance in µm (random)
	maxIter    int     // candidate draw budget (random)
	seed       uint64  // packing seed; 0 uses the global source (random)
	output     string  // output file path
	manifest   string  // manifest file path (batch mode)
	outDir     string  // output directory (batch mode)
}

// spec converts the flag values into a layout Spec.
func (o *generateOpts) spec() layout.Spec {
	return layout.Spec{
		Kind:       layout.Kind(o.kind),
		Rows:       o.rows,
		Columns:    o.columns,
		XSpacing:   o.xSpacing,
		YSpacing:   o.ySpacing,
		Spacing:    o.spacing,
		NTraps:     o.traps,
		Radius:     o.radius,
		MinSpacing: o.minSpacing,
		MaxIter:    o.maxIter,
		Seed:       o.seed,
	}
}

// newGenerateCmd creates the generate command for building trap layouts.
// Layouts are written as JSON documents that the carve, render, and
// preview commands consume.
//
// Default options:
//   - spacing: 5µm between neighboring traps
//   - random packing: 35µm disk, 5µm minimum spacing, 1000 candidate draws
func newGenerateCmd() *cobra.Command {
	opts := generateOpts{
		spacing:    layout.DefaultTriangularRectSpacing,
		radius:     layout.DefaultRandomRadius,
		minSpacing: layout.DefaultRandomMinSpacing,
		maxIter:    layout.DefaultRandomMaxIter,
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a trap layout from flags or a manifest",
		Long: `Generate trap layouts and store them as JSON documents.

A single layout is described by --kind plus its shape flags. A batch of
layouts is described by a TOML manifest with one [[layouts]] table per
layout.

Examples:
  atomgrid generate --kind square --rows 4 --columns 4 -o layout.json
  atomgrid generate --kind triangular_hex --traps 61 -o hex.json
  atomgrid generate --kind random --traps 30 --seed 42 -o random.json
  atomgrid generate --manifest layouts.toml --out-dir layouts/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.manifest != "" {
				return runGenerateManifest(cmd.Context(), &opts)
			}
			return runGenerate(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.kind, "kind", "k", "", "layout kind: rectangular, square, triangular_hex, triangular_rect, random")
	cmd.Flags().IntVar(&opts.rows, "rows", 0, "grid rows")
	cmd.Flags().IntVar(&opts.columns, "columns", 0, "grid columns")
	cmd.Flags().Float64Var(&opts.xSpacing, "x-spacing", 0, "column spacing in µm (rectangular)")
	cmd.Flags().Float64Var(&opts.ySpacing, "y-spacing", 0, "row spacing in µm (rectangular)")
	cmd.Flags().Float64Var(&opts.spacing, "spacing", opts.spacing, "spacing in µm between neighboring traps")
	cmd.Flags().IntVar(&opts.traps, "traps", 0, "number of traps (triangular_hex, random)")
	cmd.Flags().Float64Var(&opts.radius, "radius", opts.radius, "disk radius in µm (random)")
	cmd.Flags().Float64Var(&opts.minSpacing, "min-spacing", opts.minSpacing, "minimum pairwise trap distance in µm (random)")
	cmd.Flags().IntVar(&opts.maxIter, "max-iter", opts.maxIter, "candidate draw budget (random)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "packing seed for reproducible random layouts")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default <kind>.json)")
	cmd.Flags().StringVarP(&opts.manifest, "manifest", "m", "", "TOML manifest declaring layouts to generate")
	cmd.Flags().StringVar(&opts.outDir, "out-dir", ".", "output directory for manifest layouts")

	return cmd
}

// runGenerate builds a single layout from the flag-derived Spec and writes
// its document.
func runGenerate(ctx context.Context, opts *generateOpts) error {
	logger := loggerFromContext(ctx)
	spec := opts.spec()

	l, err := buildLayout(ctx, spec)
	if err != nil {
		return err
	}

	path := opts.output
	if path == "" {
		path = string(spec.Kind) + ".json"
	}
	if err := layout.WriteDocumentFile(layout.NewDocument(l), path); err != nil {
		return err
	}
	logger.Debugf("Wrote layout document: %s", path)

	printSuccess("Generated %s", l.Slug())
	printLayoutStats(l.NumTraps(), spec.Kind, spec.Seed != 0)
	if spec.Kind == layout.KindRandom && spec.Seed == 0 {
		printWarning("No seed given; this packing is not reproducible (use --seed)")
	}
	printFile(path)
	printNextStep("Carve a register", fmt.Sprintf("atomgrid carve %s --square 2", path))
	return nil
}

// runGenerateManifest builds every layout a manifest declares and writes
// one document per entry into opts.outDir, named after the entry.
func runGenerateManifest(ctx context.Context, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	m, err := manifest.Load(opts.manifest)
	if err != nil {
		return err
	}
	logger.Infof("Loaded manifest: %d layouts", len(m.Layouts))

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, "Generating layouts...")
	spinner.Start()

	for _, entry := range m.Layouts {
		spinner.SetMessage(fmt.Sprintf("Generating %s...", entry.Name))

		l, err := buildLayout(ctx, entry.Spec())
		if err != nil {
			spinner.StopWithError(fmt.Sprintf("Layout %s failed", entry.Name))
			return err
		}

		path := filepath.Join(opts.outDir, entry.Name+".json")
		if err := layout.WriteDocumentFile(layout.NewDocument(l), path); err != nil {
			spinner.StopWithError(fmt.Sprintf("Layout %s failed", entry.Name))
			return err
		}
		logger.Debugf("Wrote %s (%d traps)", path, l.NumTraps())
	}
	spinner.Stop()

	prog.done(fmt.Sprintf("Generated %d layouts", len(m.Layouts)))
	printSuccess("Generated %d layouts in %s", len(m.Layouts), opts.outDir)
	return nil
}

// buildLayout constructs the layout a Spec describes, emitting generation
// events to the registered observability hooks.
func buildLayout(ctx context.Context, spec layout.Spec) (layout.Lattice, error) {
	logger := loggerFromContext(ctx)
	logger.Infof("Building %s layout", spec.Kind)

	prog := newProgress(logger)
	observability.Layout().OnGenerateStart(ctx, string(spec.Kind), spec.NTraps)

	l, err := spec.Build()
	observability.Layout().OnGenerateComplete(ctx, string(spec.Kind), spec.NTraps, prog.elapsed(), err)
	if err != nil {
		return nil, err
	}

	prog.done(fmt.Sprintf("Placed %d traps", l.NumTraps()))
	return l, nil
}
