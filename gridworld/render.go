package gridworld

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
)

// Renderer writes grid snapshots. Colors can be switched off for
// non-terminal sinks.
type Renderer struct {
	env *Env
	au  aurora.Aurora
}

func NewRenderer(env *Env, colors bool) *Renderer {
	return &Renderer{
		env: env,
		au:  aurora.NewAurora(colors),
	}
}

// Render writes one snapshot of the grid with the agent at the given
// position. Marker precedence: agent, start, goal, wall, empty.
func (r *Renderer) Render(w io.Writer, agent Position) {
	for y := 0; y < r.env.Height(); y++ {
		for x := 0; x < r.env.Width(); x++ {
			p := Position{X: x, Y: y}
			var cell aurora.Value
			switch {
			case p.Eq(agent):
				cell = r.au.Yellow("A")
			case p.Eq(r.env.Start()):
				cell = r.au.Blue("S")
			case p.Eq(r.env.Goal()):
				cell = r.au.Green("G")
			case r.env.Wall(p):
				cell = r.au.White("#")
			default:
				cell = r.au.Gray(11, ".")
			}
			fmt.Fprintf(w, "%s ", cell)
		}
		fmt.Fprintln(w)
	}
}
