package agent

import (
	"fmt"
	"io"
	"os"

	"github.com/qlearn/qgrid/gridworld"
	"github.com/qlearn/qgrid/policies"
)

// Evaluator replays the greedy policy of a table, no exploration and no
// updates. Given a fixed table the replay is fully deterministic.
type Evaluator struct {
	env      *gridworld.Env
	table    *policies.QTable
	render   bool
	renderer *gridworld.Renderer
	out      io.Writer
}

func NewEvaluator(env *gridworld.Env, table *policies.QTable, render bool, out io.Writer) *Evaluator {
	if out == nil {
		out = os.Stdout
	}
	return &Evaluator{
		env:      env,
		table:    table,
		render:   render,
		renderer: gridworld.NewRenderer(env, out == os.Stdout),
		out:      out,
	}
}

// Run replays the greedy policy for the given number of episodes and
// reports return and step count for each.
func (e *Evaluator) Run(episodes int) []EpisodeStats {
	policy := policies.NewGreedy(e.table)
	stats := make([]EpisodeStats, 0, episodes)

	for ep := 1; ep <= episodes; ep++ {
		st := EpisodeStats{Episode: ep}
		pos := e.env.Start()
		for {
			if e.render {
				fmt.Fprintln(e.out)
				e.renderer.Render(e.out, pos)
			}
			state := e.env.StateID(pos)
			next, reward, done := e.env.Step(pos, policy.NextAction(state))
			st.Return += reward
			st.Steps++
			pos = next
			if done {
				st.Reached = true
				break
			}
			if st.Steps >= e.env.StepLimit() {
				break
			}
		}
		fmt.Fprintf(e.out, "play %d | return %.2f | steps %d\n", ep, st.Return, st.Steps)
		stats = append(stats, st)
	}
	return stats
}
