package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ExportCurvePNG writes one diagram curve over the span to a PNG file.
func ExportCurvePNG(title, yLabel string, x, y []float64, filename string) error {
	if len(x) != len(y) {
		return fmt.Errorf("diagram: position and value sequences differ in length (%d vs %d)", len(x), len(y))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Position x (mm)"
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i] = plotter.XY{X: x[i], Y: y[i]}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(line)

	// Zero axis reference
	if len(x) > 0 {
		zero, err := plotter.NewLine(plotter.XYs{
			{X: x[0], Y: 0},
			{X: x[len(x)-1], Y: 0},
		})
		if err == nil {
			zero.LineStyle.Width = vg.Points(1)
			zero.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
			zero.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
			p.Add(zero)
		}
	}

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	return p.Save(10*vg.Inch, 4*vg.Inch, filename)
}
