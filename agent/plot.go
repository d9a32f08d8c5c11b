package agent

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/qlearn/qgrid/gridworld"
	"github.com/qlearn/qgrid/policies"
)

// SaveReturnPlot writes the mean return per reporting window as a line
// chart.
func SaveReturnPlot(stats []EpisodeStats, window int, path string) error {
	if window <= 0 {
		window = 100
	}
	p := plot.New()
	p.Title.Text = "Training return"
	p.X.Label.Text = "Episode"
	p.Y.Label.Text = "Mean return"

	points := make(plotter.XYs, 0, len(stats)/window+1)
	sum := float64(0)
	for i, st := range stats {
		sum += float64(st.Return)
		if (i+1)%window == 0 {
			points = append(points, plotter.XY{
				X: float64(st.Episode),
				Y: sum / float64(window),
			})
			sum = 0
		}
	}
	line, err := plotter.NewLine(points)
	if err != nil {
		return fmt.Errorf("build return line: %w", err)
	}
	line.Color = plotutil.Color(0)
	p.Add(line)
	return p.Save(8*vg.Inch, 8*vg.Inch, path)
}

// valueGrid adapts the best value per cell to a plottable grid.
type valueGrid struct {
	env   *gridworld.Env
	table *policies.QTable
}

var _ plotter.GridXYZ = &valueGrid{}

func (v *valueGrid) Dims() (int, int) {
	return v.env.Width(), v.env.Height()
}

func (v *valueGrid) X(c int) float64 { return float64(c) }

func (v *valueGrid) Y(r int) float64 { return float64(r) }

func (v *valueGrid) Z(c, r int) float64 {
	return float64(v.table.BestValue(v.env.StateID(gridworld.Position{X: c, Y: r})))
}

// SaveValueHeatMap writes a heat map of the best value per cell.
func SaveValueHeatMap(env *gridworld.Env, table *policies.QTable, path string) error {
	p := plot.New()
	p.Title.Text = "State values"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewHeatMap(&valueGrid{env: env, table: table}, palette.Heat(16, 1)))
	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}
