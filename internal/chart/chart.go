// Package chart draws the current/voltage characteristic of a circuit.
package chart

import (
	"fmt"
	"image/color"
	"io"
	"slices"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/jeffreywbertke/DC/internal/circuit"
)

const (
	// MaxVoltage is the upper end of the source sweep.
	MaxVoltage = 30.0
	samples    = 61
)

var (
	totalColor = color.RGBA{R: 220, G: 38, B: 38, A: 255}
	pointColor = color.RGBA{R: 37, G: 99, B: 235, A: 255}
	branchGray = color.RGBA{R: 100, G: 116, B: 139, A: 255}
)

// Formats lists the image formats WriteIV accepts.
var Formats = []string{"png", "svg", "pdf"}

// Sweep returns I = V/Req sampled across 0..MaxVoltage.
func Sweep(req float64) plotter.XYs {
	pts := make(plotter.XYs, samples)
	for i := range pts {
		v := MaxVoltage * float64(i) / float64(samples-1)
		pts[i].X = v
		pts[i].Y = v / req
	}
	return pts
}

// New builds the I-V plot for p: the total current line, one dashed line
// per resistor and the problem's operating point.
func New(p circuit.Problem) (*plot.Plot, error) {
	res := p.Result
	if res.TotalResistance <= 0 {
		return nil, fmt.Errorf("chart: equivalent resistance %v", res.TotalResistance)
	}

	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("%s circuit, Req = %.2f Ω", p.Circuit.Topology, res.TotalResistance)
	pl.X.Label.Text = "Source voltage (V)"
	pl.Y.Label.Text = "Current (A)"
	pl.X.Min = 0
	pl.X.Max = MaxVoltage
	pl.Y.Min = 0
	pl.Legend.Top = true
	pl.Legend.Left = true
	pl.Add(plotter.NewGrid())

	total, err := plotter.NewLine(Sweep(res.TotalResistance))
	if err != nil {
		return nil, fmt.Errorf("chart: total line: %w", err)
	}
	total.LineStyle.Color = totalColor
	total.LineStyle.Width = vg.Points(2)
	pl.Add(total)
	pl.Legend.Add("I total", total)

	for _, comp := range p.Circuit.Components {
		// Every branch current scales linearly with the source voltage.
		share := res.Currents[comp.ID] / res.TotalCurrent
		if share <= 0 || share >= 1 {
			continue
		}
		pts := Sweep(res.TotalResistance)
		for i := range pts {
			pts[i].Y *= share
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("chart: %s line: %w", comp.Label, err)
		}
		line.LineStyle.Color = branchGray
		line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		pl.Add(line)
		pl.Legend.Add("I "+comp.Label, line)
	}

	op, err := plotter.NewScatter(plotter.XYs{{X: p.Circuit.Voltage, Y: res.TotalCurrent}})
	if err != nil {
		return nil, fmt.Errorf("chart: operating point: %w", err)
	}
	op.GlyphStyle.Color = pointColor
	op.GlyphStyle.Radius = vg.Points(4)
	op.GlyphStyle.Shape = draw.CircleGlyph{}
	pl.Add(op)
	pl.Legend.Add(fmt.Sprintf("%.0f V, %.2f A", p.Circuit.Voltage, res.TotalCurrent), op)

	return pl, nil
}

// WriteIV renders the plot for p to w in the given format.
func WriteIV(w io.Writer, p circuit.Problem, format string) error {
	if !slices.Contains(Formats, format) {
		return fmt.Errorf("chart: unsupported format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}

	pl, err := New(p)
	if err != nil {
		return err
	}

	wt, err := pl.WriterTo(6*vg.Inch, 4*vg.Inch, format)
	if err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("chart: write: %w", err)
	}
	return nil
}
