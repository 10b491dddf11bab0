package bench

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// SavePlot draws evaluation time against index, one line per backend.
// The image format follows the file extension (.png, .svg, .pdf, ...).
func SavePlot(path string, r Report) error {
	p := plot.New()
	p.Title.Text = "Memoized Fibonacci: evaluation time per backend"
	p.X.Label.Text = "n (Fibonacci index)"
	p.Y.Label.Text = "Execution time (seconds)"
	p.Add(plotter.NewGrid())

	for i, s := range r.Series {
		pts := make(plotter.XYs, len(s.Samples))
		for j, sm := range s.Samples {
			pts[j].X = float64(sm.Index)
			pts[j].Y = sm.Duration().Seconds()
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("plot %s: %w", s.Backend, err)
		}
		line.Color = plotutil.Color(i)
		line.Dashes = plotutil.Dashes(i)
		p.Add(line)
		p.Legend.Add(s.Backend, line)
	}

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot %s: %w", path, err)
	}
	return nil
}
