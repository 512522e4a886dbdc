package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/atomgrid/pkg/errors"
	"github.com/matzehuels/atomgrid/pkg/layout"
	"github.com/matzehuels/atomgrid/pkg/observability"
	"github.com/matzehuels/atomgrid/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string  // output file path; format inferred from extension
	format   string  // output format when --output is not set: svg, png, pdf
	title    string  // plot title override
	width    float64 // canvas width in centimeters
	height   float64 // canvas height in centimeters
	register string  // register JSON to highlight
	labels   bool    // annotate highlighted atoms with qubit IDs
}

// newRenderCmd creates the render command for drawing layouts as scatter
// plots. Traps are drawn as hollow circles; a register given with
// --register is drawn filled on top.
//
// Default settings:
//   - format: svg
//   - canvas: 15cm x 15cm
func newRenderCmd() *cobra.Command {
	opts := renderOpts{
		format: "svg",
		width:  render.DefaultWidthCM,
		height: render.DefaultHeightCM,
	}

	cmd := &cobra.Command{
		Use:   "render <layout.json>",
		Short: "Render a layout as an SVG, PNG, or PDF plot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default derived from input)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format when --output is unset: svg, png, pdf")
	cmd.Flags().StringVar(&opts.title, "title", "", "plot title (default layout slug)")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "canvas width in cm")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "canvas height in cm")
	cmd.Flags().StringVarP(&opts.register, "register", "r", "", "register JSON file to highlight")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "annotate highlighted atoms with qubit IDs")

	return cmd
}

// outputPath derives the output file from the flags: --output wins, else
// the input name with the requested format's extension.
func outputPath(input string, opts *renderOpts) string {
	if opts.output != "" {
		return opts.output
	}
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "." + opts.format
}

// runRender loads the layout document and optional register, draws the
// scatter plot, and writes it to the derived output path.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	doc, err := layout.ReadDocumentFile(input)
	if err != nil {
		return err
	}
	logger.Infof("Rendering %s (%d traps)", doc.Slug, len(doc.Traps))

	plotOpts := render.Options{
		Title:    opts.title,
		WidthCM:  opts.width,
		HeightCM: opts.height,
		Labels:   opts.labels,
	}
	if opts.register != "" {
		reg, err := readRegisterFile(opts.register)
		if err != nil {
			return err
		}
		logger.Debugf("Highlighting %d atoms", reg.Len())
		plotOpts.Highlight = reg
	}

	path := outputPath(input, opts)
	format := strings.TrimPrefix(filepath.Ext(path), ".")

	prog := newProgress(logger)
	observability.Render().OnRenderStart(ctx, format)
	err = render.WriteFile(doc, path, plotOpts)
	observability.Render().OnRenderComplete(ctx, format, prog.elapsed(), err)
	if err != nil {
		return err
	}
	prog.done("Rendered " + path)

	printSuccess("Rendered %s", doc.Slug)
	if plotOpts.Highlight != nil {
		printInfo("Highlighted %d atoms", plotOpts.Highlight.Len())
	}
	printFile(path)
	return nil
}

// readRegisterFile loads a register from the JSON written by carve.
func readRegisterFile(path string) (*layout.Register, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
	}
	var reg layout.Register
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "unmarshal register")
	}
	return &reg, nil
}
