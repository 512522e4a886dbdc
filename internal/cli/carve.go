package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/atomgrid/pkg/errors"
	"github.com/matzehuels/atomgrid/pkg/layout"
	"github.com/matzehuels/atomgrid/pkg/observability"
)

// carveOpts holds the command-line flags for the carve command.
// Exactly one carve mode must be selected: --square, --rows/--columns,
// --hex, or --traps.
type carveOpts struct {
	square  int    // side of a square register
	rows    int    // rows of a rectangular register
	columns int    // columns (atoms per row) of a rectangular register
	hex     int    // atom count of a hexagonal register
	traps   string // comma-separated trap IDs for an explicit register
	prefix  string // qubit ID prefix
	output  string // optional register JSON output path
}

// newCarveCmd creates the carve command for cutting registers out of
// stored layouts. The register is printed as a table of qubit IDs, trap
// indices, and positions; --output additionally writes it as JSON.
func newCarveCmd() *cobra.Command {
	opts := carveOpts{prefix: "q"}

	cmd := &cobra.Command{
		Use:   "carve <layout.json>",
		Short: "Carve a register out of a stored layout",
		Long: `Carve a register of atoms out of a stored layout document.

Square and rectangular registers are cut from rectangular lattices,
hexagonal and rectangular registers from triangular lattices. Any layout
accepts an explicit list of trap IDs.

Examples:
  atomgrid carve layout.json --square 3
  atomgrid carve layout.json --rows 2 --columns 4 --prefix atom
  atomgrid carve hex.json --hex 19
  atomgrid carve random.json --traps 0,3,7 -o register.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCarve(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().IntVar(&opts.square, "square", 0, "carve a square register with the given side")
	cmd.Flags().IntVar(&opts.rows, "rows", 0, "carve a rectangular register with the given rows")
	cmd.Flags().IntVar(&opts.columns, "columns", 0, "columns (atoms per row) of the rectangular register")
	cmd.Flags().IntVar(&opts.hex, "hex", 0, "carve a hexagonal register with the given atom count")
	cmd.Flags().StringVar(&opts.traps, "traps", "", "carve an explicit register from comma-separated trap IDs")
	cmd.Flags().StringVarP(&opts.prefix, "prefix", "p", opts.prefix, "qubit ID prefix")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the register as JSON to this file")

	return cmd
}

// runCarve loads the layout document, cuts the requested register, prints
// it, and optionally writes it as JSON.
func runCarve(ctx context.Context, input string, opts *carveOpts) error {
	logger := loggerFromContext(ctx)

	if err := errors.ValidateQubitPrefix(opts.prefix); err != nil {
		return err
	}

	doc, err := layout.ReadDocumentFile(input)
	if err != nil {
		return err
	}
	l, err := layout.FromDocument(doc)
	if err != nil {
		return err
	}
	logger.Infof("Loaded %s (%d traps)", l.Slug(), l.NumTraps())

	shape, err := carveShape(opts)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	observability.Layout().OnCarveStart(ctx, l.Slug(), shape)
	reg, err := carveRegister(l, opts)
	observability.Layout().OnCarveComplete(ctx, l.Slug(), shape, regLen(reg), prog.elapsed(), err)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Carved %d atoms", reg.Len()))

	printKeyValue("Layout", l.Slug())
	printDetail("Carved %s (%d of %d traps)", shape, reg.Len(), l.NumTraps())
	fmt.Println(registerTable(reg))

	if opts.output != "" {
		data, err := json.MarshalIndent(reg, "", "  ")
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "marshal register")
		}
		if err := os.WriteFile(opts.output, data, 0644); err != nil {
			return err
		}
		printFile(opts.output)
	}
	return nil
}

// carveShape validates flag combinations and returns a short description
// of the requested register.
func carveShape(opts *carveOpts) (string, error) {
	var modes []string
	if opts.square > 0 {
		modes = append(modes, fmt.Sprintf("%dx%d square", opts.square, opts.square))
	}
	if opts.rows > 0 || opts.columns > 0 {
		if opts.rows <= 0 || opts.columns <= 0 {
			return "", errors.New(errors.ErrCodeInvalidInput, "--rows and --columns must both be set")
		}
		modes = append(modes, fmt.Sprintf("%dx%d rectangle", opts.rows, opts.columns))
	}
	if opts.hex > 0 {
		modes = append(modes, fmt.Sprintf("%d-atom hexagon", opts.hex))
	}
	if opts.traps != "" {
		modes = append(modes, "explicit traps")
	}

	if len(modes) != 1 {
		return "", errors.New(errors.ErrCodeInvalidInput,
			"exactly one of --square, --rows/--columns, --hex, or --traps must be given")
	}
	return modes[0], nil
}

// carveRegister dispatches to the carve operation matching the flags and
// the layout variant.
func carveRegister(l layout.Lattice, opts *carveOpts) (*layout.Register, error) {
	if opts.traps != "" {
		return carveExplicit(l, opts.traps, opts.prefix)
	}

	switch lat := l.(type) {
	case *layout.RectangularLattice:
		if opts.hex > 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"hexagonal registers require a triangular layout, got %s", l.Slug())
		}
		if opts.square > 0 {
			return lat.SquareRegister(opts.square, opts.prefix)
		}
		return lat.RectangularRegister(opts.rows, opts.columns, opts.prefix)
	case *layout.TriangularLattice:
		if opts.square > 0 {
			return lat.RectangularRegister(opts.square, opts.square, opts.prefix)
		}
		if opts.hex > 0 {
			return lat.HexagonalRegister(opts.hex, opts.prefix)
		}
		return lat.RectangularRegister(opts.rows, opts.columns, opts.prefix)
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"%s only supports --traps carving", l.Slug())
	}
}

// carveExplicit builds a register from a comma-separated trap ID list,
// assigning sequential qubit IDs.
func carveExplicit(l layout.Lattice, traps, prefix string) (*layout.Register, error) {
	fields := strings.Split(traps, ",")
	ids := make([]int, 0, len(fields))
	for _, f := range fields {
		id, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "invalid trap ID %q", f)
		}
		ids = append(ids, id)
	}
	qubitIDs := make([]string, len(ids))
	for i := range ids {
		qubitIDs[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return l.DefineRegister(ids, qubitIDs)
}

// regLen returns the register's atom count, tolerating a nil register so
// hook calls stay simple on the error path.
func regLen(reg *layout.Register) int {
	if reg == nil {
		return 0
	}
	return reg.Len()
}
