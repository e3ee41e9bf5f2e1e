package trainer

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// savePredictionPlot writes an actual-vs-predicted scatter for the held-out
// split, with the identity line for reference.
func savePredictionPlot(filename string, actual, predicted []float64) error {
	p := plot.New()
	p.Title.Text = "Held-Out Rent Predictions"
	p.X.Label.Text = "Actual Rent"
	p.Y.Label.Text = "Predicted Rent"

	pts := make(plotter.XYs, len(actual))
	lo, hi := actual[0], actual[0]
	for i := range actual {
		pts[i].X = actual[i]
		pts[i].Y = predicted[i]
		if actual[i] < lo {
			lo = actual[i]
		}
		if actual[i] > hi {
			hi = actual[i]
		}
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.Color = color.RGBA{R: 50, G: 50, B: 255, A: 255}
	p.Add(s)

	// Identity line: a perfect model puts every point on it.
	line, err := plotter.NewLine(plotter.XYs{{X: lo, Y: lo}, {X: hi, Y: hi}})
	if err != nil {
		return err
	}
	line.Color = color.RGBA{R: 255, A: 255}
	line.LineStyle.Width = vg.Points(2)
	p.Add(line)

	return p.Save(6*vg.Inch, 6*vg.Inch, filename)
}
