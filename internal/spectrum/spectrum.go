// SPDX-License-Identifier: MIT
// Package spectrum renders scree plots: a descending spectrum (eigenvalues or
// singular values) against its 1-based index, drawn with gonum/plot.
//
// Supported formats follow gonum/plot's writer set (png, svg, pdf, eps, jpg,
// tif). The format is taken from the file extension in Save and named
// explicitly in Render.
package spectrum

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Default canvas size.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

var (
	// ErrNoValues is returned for an empty spectrum.
	ErrNoValues = errors.New("spectrum: no values to plot")
	// ErrNonFinite is returned when a value is NaN or ±Inf.
	ErrNonFinite = errors.New("spectrum: non-finite value")
)

// Scree describes one plot.
type Scree struct {
	Title  string
	YLabel string
	Values []float64
	// Cumulative adds a second line with the running share of the total,
	// scaled to the largest value so both fit on one axis.
	Cumulative bool
}

// Plot builds the gonum plot for s.
// Errors:
//   - ErrNoValues, ErrNonFinite.
func (s Scree) Plot() (*plot.Plot, error) {
	if len(s.Values) == 0 {
		return nil, ErrNoValues
	}
	for i, v := range s.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("spectrum: value %d: %w", i, ErrNonFinite)
		}
	}

	p := plot.New()
	p.Title.Text = s.Title
	p.X.Label.Text = "index"
	p.Y.Label.Text = s.YLabel
	p.Add(plotter.NewGrid())

	pts := points(s.Values)
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("spectrum: line: %w", err)
	}
	line.LineStyle.Width = vg.Points(1)
	line.LineStyle.Color = color.RGBA{B: 200, A: 255}

	marks, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("spectrum: scatter: %w", err)
	}
	marks.GlyphStyle.Shape = draw.CircleGlyph{}
	marks.GlyphStyle.Radius = vg.Points(2.5)
	marks.GlyphStyle.Color = color.RGBA{B: 200, A: 255}

	p.Add(line, marks)
	p.Legend.Add(s.YLabel, line, marks)

	if s.Cumulative {
		cum, err := plotter.NewLine(points(cumulativeScaled(s.Values)))
		if err != nil {
			return nil, fmt.Errorf("spectrum: cumulative: %w", err)
		}
		cum.LineStyle.Width = vg.Points(1)
		cum.LineStyle.Color = color.RGBA{R: 200, A: 255}
		cum.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(cum)
		p.Legend.Add("cumulative share", cum)
	}
	p.Legend.Top = true

	return p, nil
}

// Render writes the plot to w in format ("png", "svg", ...).
// Zero width or height selects the default canvas size.
func (s Scree) Render(w io.Writer, format string, width, height vg.Length) error {
	p, err := s.Plot()
	if err != nil {
		return err
	}
	width, height = canvas(width, height)
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return fmt.Errorf("spectrum: %s writer: %w", format, err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("spectrum: write: %w", err)
	}

	return nil
}

// Save writes the plot to path; the extension picks the format.
func (s Scree) Save(path string, width, height vg.Length) error {
	p, err := s.Plot()
	if err != nil {
		return err
	}
	width, height = canvas(width, height)
	if err = p.Save(width, height, path); err != nil {
		return fmt.Errorf("spectrum: save %s: %w", path, err)
	}

	return nil
}

// ExplainedShare returns v[i]/Σ|v| for each value. A zero total gives zeros.
func ExplainedShare(values []float64) []float64 {
	var total float64
	for _, v := range values {
		total += math.Abs(v)
	}
	out := make([]float64, len(values))
	if total == 0 {
		return out
	}
	for i, v := range values {
		out[i] = math.Abs(v) / total
	}

	return out
}

func points(values []float64) plotter.XYs {
	pts := make(plotter.XYs, len(values))
	for i, v := range values {
		pts[i].X = float64(i + 1)
		pts[i].Y = v
	}

	return pts
}

// cumulativeScaled maps the running share onto [0, max|v|].
func cumulativeScaled(values []float64) []float64 {
	share := ExplainedShare(values)
	top := 0.0
	for _, v := range values {
		top = math.Max(top, math.Abs(v))
	}
	out := make([]float64, len(share))
	run := 0.0
	for i, s := range share {
		run += s
		out[i] = run * top
	}

	return out
}

func canvas(width, height vg.Length) (vg.Length, vg.Length) {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	return width, height
}
