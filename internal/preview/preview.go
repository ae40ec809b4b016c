// Package preview renders generated trajectories to an image so a fixture can be
// checked by eye before it is committed.
package preview

import (
	"fmt"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/cxd309/trajgen/internal/robot"
)

// Plot builds a plot with one line per trajectory and a marker at each start.
// Conflicting trajectories are drawn dashed.
func Plot(title string, set robot.TrajectorySet) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = "y (m)"
	p.Legend.Top = true

	conflicting := make(map[int]bool)
	for _, group := range set.Conflicts {
		for _, id := range group {
			conflicting[id] = true
		}
	}

	for i, tr := range set.Trajectories {
		if len(tr.Segments) == 0 {
			continue
		}
		pts := make(plotter.XYs, len(tr.Segments))
		for j, k := range tr.Segments {
			pts[j] = plotter.XY{X: k.X.X, Y: k.X.Y}
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("line for %s: %w", tr.RobotName, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1.5)
		if conflicting[tr.ID] {
			line.Dashes = plotutil.Dashes(1)
		}

		start, err := plotter.NewScatter(pts[:1])
		if err != nil {
			return nil, fmt.Errorf("start marker for %s: %w", tr.RobotName, err)
		}
		start.Color = plotutil.Color(i)
		start.Shape = plotutil.Shape(0)

		p.Add(line, start)
		p.Legend.Add(tr.RobotName, line)
	}
	p.Add(plotter.NewGrid())
	return p, nil
}

// Save renders set to path. The image format follows the file extension
// (.png, .svg, .pdf, ...).
func Save(path, title string, set robot.TrajectorySet) error {
	p, err := Plot(title, set)
	if err != nil {
		return err
	}
	if err := p.Save(8*vg.Inch, 6*vg.Inch, filepath.Clean(path)); err != nil {
		return fmt.Errorf("saving preview %s: %w", path, err)
	}
	return nil
}
