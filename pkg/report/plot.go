package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/Prince-05/SVM-Optimazation/pkg/errs"
	"github.com/Prince-05/SVM-Optimazation/pkg/search"
)

// PlotFile is the name of the convergence graph image.
const PlotFile = "Convergence_Best_SVM.png"

// ConvergencePlot builds the accuracy-per-trial line plot of an outcome.
// Trials are numbered from 1.
func ConvergencePlot(o search.Outcome) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Convergence Graph for the Best SVM Model"
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Iteration"
	p.Y.Label.Text = "Accuracy"
	p.X.Label.TextStyle.Font.Size = vg.Points(12)
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)

	grid := plotter.NewGrid()
	grid.Horizontal.Color = color.Gray{Y: 200}
	grid.Vertical.Color = color.Gray{Y: 200}
	p.Add(grid)

	pts := make(plotter.XYs, len(o.Trace))
	for i, acc := range o.Trace {
		pts[i].X = float64(i + 1)
		pts[i].Y = acc
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("plot: %w", err)
	}
	l.Color = color.RGBA{B: 255, A: 255}
	l.LineStyle.Width = vg.Points(2)
	p.Add(l)

	p.Legend.Add("Accuracy Over Iterations", l)
	p.Legend.Top = true
	p.Legend.Left = true
	return p, nil
}

// PlotConvergence saves the convergence graph of o to path. The image format
// follows the file extension.
func PlotConvergence(o search.Outcome, path string) error {
	p, err := ConvergencePlot(o)
	if err != nil {
		return &errs.ExportError{Path: path, Err: err}
	}
	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return &errs.ExportError{Path: path, Err: err}
	}
	return nil
}
