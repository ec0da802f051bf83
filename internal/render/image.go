package render

import (
	"bufio"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/jackwarfield/5300-final-project/internal/mech"
	"github.com/jackwarfield/5300-final-project/internal/physics"
)

var (
	primaryLine   = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	secondaryLine = color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}
)

// SaveSeriesPNG writes one series against time as a PNG line chart.
func SaveSeriesPNG(path, title, xlabel, ylabel string, xs, ys []float64) error {
	if len(xs) != len(ys) || len(xs) == 0 {
		return fmt.Errorf("%w: series needs matching x and y data", mech.ErrInvalidParameter)
	}
	p := newPlot(title, xlabel, ylabel)
	line, err := plotter.NewLine(xyPoints(xs, ys))
	if err != nil {
		return err
	}
	line.Color = primaryLine
	line.LineStyle.Width = vg.Points(1.5)
	p.Add(line)
	return savePNG(p, 8, 6, path)
}

// SaveOrbitPNG writes both body paths in the plane.
func SaveOrbitPNG(path string, sys *physics.TwoBody, traj *mech.Trajectory) error {
	n := traj.Len()
	x1s, y1s := make([]float64, n), make([]float64, n)
	x2s, y2s := make([]float64, n), make([]float64, n)
	for i, x := range traj.States {
		x1s[i], y1s[i], x2s[i], y2s[i] = sys.Positions(x)
	}

	p := newPlot("Two-body orbit", "x", "y")
	first, err := plotter.NewLine(xyPoints(x1s, y1s))
	if err != nil {
		return err
	}
	second, err := plotter.NewLine(xyPoints(x2s, y2s))
	if err != nil {
		return err
	}
	first.Color = primaryLine
	second.Color = secondaryLine
	first.LineStyle.Width = vg.Points(1.5)
	second.LineStyle.Width = vg.Points(1.5)
	p.Add(first, second)
	p.Legend.Add("body 1", first)
	p.Legend.Add("body 2", second)
	return savePNG(p, 8, 8, path)
}

// SavePendulumPNG writes the second bob's path in the plane.
func SavePendulumPNG(path string, sys *physics.DoublePendulum, traj *mech.Trajectory) error {
	n := traj.Len()
	xs, ys := make([]float64, n), make([]float64, n)
	for i, x := range traj.States {
		_, _, xs[i], ys[i] = sys.Positions(x)
	}

	p := newPlot("Double pendulum tip path", "x", "y")
	line, err := plotter.NewLine(xyPoints(xs, ys))
	if err != nil {
		return err
	}
	line.Color = primaryLine
	line.LineStyle.Width = vg.Points(1)
	p.Add(line)
	return savePNG(p, 8, 8, path)
}

func newPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Title.Padding = vg.Points(8)
	p.X.Label.Padding = vg.Points(6)
	p.Y.Label.Padding = vg.Points(6)
	p.X.Padding = vg.Points(8)
	p.Y.Padding = vg.Points(8)
	return p
}

func xyPoints(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}

func savePNG(p *plot.Plot, widthIn, heightIn float64, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("cannot create directory: %w", err)
		}
	}

	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(widthIn)*vg.Inch, vg.Length(heightIn)*vg.Inch),
		vgimg.UseDPI(150),
	)
	p.Draw(draw.New(c))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create png: %w", err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	defer bw.Flush()

	png := vgimg.PngCanvas{Canvas: c}
	if _, err := png.WriteTo(bw); err != nil {
		return fmt.Errorf("cannot write png: %w", err)
	}
	return nil
}
