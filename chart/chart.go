// Package chart draws the sliding GC content and the hydrophobicity
// profile of an analysis.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/feliixx/goseqan/seqan"
)

// ErrNoData is returned when there is no point to draw
var ErrNoData = errors.New("no data to plot")

const (
	width  = 6 * vg.Inch
	height = 3 * vg.Inch

	// bounds of the Kyte-Doolittle scale
	minHydropathy = -4.5
	maxHydropathy = 4.5
)

var (
	gcColor    = color.RGBA{R: 0x82, G: 0xca, B: 0x9d, A: 0xff}
	hydroColor = color.RGBA{R: 0x88, G: 0x84, B: 0xd8, A: 0xff}
)

// GCContent returns the plot of the sliding GC content
func GCContent(points []seqan.GCPoint) (*plot.Plot, error) {

	if len(points) == 0 {
		return nil, ErrNoData
	}

	xys := make(plotter.XYs, len(points))
	for i, p := range points {
		xys[i].X = float64(p.Position)
		xys[i].Y = p.GCContent
	}

	p := plot.New()
	p.Title.Text = "GC Content"
	p.X.Label.Text = "Sequence Position"
	p.Y.Label.Text = "GC Content (%)"
	p.Y.Min, p.Y.Max = 0, 100

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	line.Color = gcColor

	p.Add(plotter.NewGrid(), line)
	return p, nil
}

// Hydrophobicity returns the plot of the hydrophobicity profile
func Hydrophobicity(points []seqan.HydroPoint) (*plot.Plot, error) {

	if len(points) == 0 {
		return nil, ErrNoData
	}

	xys := make(plotter.XYs, len(points))
	for i, p := range points {
		xys[i].X = float64(p.Position)
		xys[i].Y = p.Score
	}

	p := plot.New()
	p.Title.Text = "Hydrophobicity Plot"
	p.X.Label.Text = "Amino Acid Position"
	p.Y.Label.Text = "Hydrophobicity"
	p.Y.Min, p.Y.Max = minHydropathy, maxHydropathy

	line, scatter, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, err
	}
	line.Color = hydroColor
	line.Width = vg.Points(2)
	scatter.Color = hydroColor

	p.Add(plotter.NewGrid(), line, scatter)
	return p, nil
}

// Render writes p to w in format, one of "png", "svg", "pdf", "eps",
// "jpg", "tif"
func Render(w io.Writer, p *plot.Plot, format string) error {

	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return fmt.Errorf("fail to render plot: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// Save writes p to file, the format is deduced from the extension
func Save(p *plot.Plot, file string) error {
	if err := p.Save(width, height, file); err != nil {
		return fmt.Errorf("fail to save plot to %s: %w", filepath.Base(file), err)
	}
	return nil
}
