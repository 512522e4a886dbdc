// Package render draws trap layouts and registers as scatter plots.
//
// Plots are produced with gonum.org/v1/plot. Empty traps are drawn as
// hollow gray circles; atoms of a highlighted register are drawn as
// filled colored circles, optionally annotated with their qubit IDs.
// The output format is inferred from the file extension (.svg, .png,
// .pdf) when saving.
package render

import (
	"image/color"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matzehuels/atomgrid/pkg/errors"
	"github.com/matzehuels/atomgrid/pkg/layout"
)

// Plot dimensions default to a square canvas sized for roughly 100 traps.
const (
	DefaultWidthCM  = 15.0
	DefaultHeightCM = 15.0
)

var (
	colorTrap = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	colorAtom = color.RGBA{R: 31, G: 119, B: 180, A: 255}
)

// Options controls how a layout is drawn.
type Options struct {
	Title     string           // plot title; defaults to the layout slug
	WidthCM   float64          // canvas width in centimeters
	HeightCM  float64          // canvas height in centimeters
	Highlight *layout.Register // register atoms drawn filled, if set
	Labels    bool             // annotate highlighted atoms with qubit IDs
}

// Scatter builds a scatter plot of the layout's traps. If opts.Highlight
// is set, its atoms are drawn filled on top of the trap markers.
func Scatter(doc layout.Document, opts Options) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = opts.Title
	if p.Title.Text == "" {
		p.Title.Text = doc.Slug
	}
	p.X.Label.Text = "x (µm)"
	p.Y.Label.Text = "y (µm)"

	traps := make(plotter.XYs, len(doc.Traps))
	for i, t := range doc.Traps {
		traps[i] = plotter.XY{X: t.X, Y: t.Y}
	}
	trapScatter, err := plotter.NewScatter(traps)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "trap scatter")
	}
	trapScatter.GlyphStyle.Shape = draw.RingGlyph{}
	trapScatter.GlyphStyle.Color = colorTrap
	trapScatter.GlyphStyle.Radius = vg.Points(3)
	p.Add(trapScatter)
	p.Legend.Add("traps", trapScatter)

	if opts.Highlight != nil && opts.Highlight.Len() > 0 {
		if err := addRegister(p, opts.Highlight, opts.Labels); err != nil {
			return nil, err
		}
	}

	p.Legend.Top = true
	p.Legend.Left = false
	return p, nil
}

// addRegister overlays the register's atoms as filled glyphs and,
// when labels is true, annotates each atom with its qubit ID.
func addRegister(p *plot.Plot, reg *layout.Register, labels bool) error {
	atoms := reg.Atoms()
	pts := make(plotter.XYs, len(atoms))
	for i, a := range atoms {
		pts[i] = plotter.XY{X: a.Pos.X, Y: a.Pos.Y}
	}
	atomScatter, err := plotter.NewScatter(pts)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "atom scatter")
	}
	atomScatter.GlyphStyle.Shape = draw.CircleGlyph{}
	atomScatter.GlyphStyle.Color = colorAtom
	atomScatter.GlyphStyle.Radius = vg.Points(4)
	p.Add(atomScatter)
	p.Legend.Add("atoms", atomScatter)

	if !labels {
		return nil
	}
	xys := make(plotter.XYs, len(atoms))
	names := make([]string, len(atoms))
	for i, a := range atoms {
		xys[i] = plotter.XY{X: a.Pos.X, Y: a.Pos.Y}
		names[i] = a.ID
	}
	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: names})
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "atom labels")
	}
	p.Add(l)
	return nil
}

// validExtensions is the set of supported output formats.
var validExtensions = map[string]bool{".svg": true, ".png": true, ".pdf": true}

// ValidateOutputPath checks that the output path carries a supported
// plot extension.
func ValidateOutputPath(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !validExtensions[ext] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"unsupported output format %q (must be .svg, .png, or .pdf)", ext)
	}
	return nil
}

// WriteFile renders the layout and saves it to path. The format is
// inferred from the extension.
func WriteFile(doc layout.Document, path string, opts Options) error {
	if err := ValidateOutputPath(path); err != nil {
		return err
	}
	p, err := Scatter(doc, opts)
	if err != nil {
		return err
	}
	w := opts.WidthCM
	if w <= 0 {
		w = DefaultWidthCM
	}
	h := opts.HeightCM
	if h <= 0 {
		h = DefaultHeightCM
	}
	if err := p.Save(vg.Length(w)*vg.Centimeter, vg.Length(h)*vg.Centimeter, path); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "save plot")
	}
	return nil
}
