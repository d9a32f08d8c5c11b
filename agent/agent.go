package agent

import (
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/stat"

	"github.com/qlearn/qgrid/gridworld"
	"github.com/qlearn/qgrid/policies"
)

// EpisodeStats is the outcome of a single episode.
type EpisodeStats struct {
	Episode int
	Steps   int
	Return  float32
	// Reached is true when the goal was hit, false when the step
	// limit ended the episode.
	Reached bool
}

type Config struct {
	Episodes int
	// ReportEvery prints mean steps and mean return over the last
	// window every N episodes. 0 disables reporting.
	ReportEvery int
	// RenderEvery renders the grid during every Nth episode.
	// 0 disables rendering.
	RenderEvery int
	Out         io.Writer
}

// Trainer drives learning episodes against the environment and feeds
// every transition into the policy.
type Trainer struct {
	config   *Config
	env      *gridworld.Env
	policy   policies.Policy
	renderer *gridworld.Renderer
	out      io.Writer
}

func NewTrainer(config *Config, env *gridworld.Env, policy policies.Policy) *Trainer {
	out := config.Out
	if out == nil {
		out = os.Stdout
	}
	return &Trainer{
		config:   config,
		env:      env,
		policy:   policy,
		renderer: gridworld.NewRenderer(env, out == os.Stdout),
		out:      out,
	}
}

// Run executes the configured number of episodes and returns the
// per-episode statistics.
func (t *Trainer) Run() []EpisodeStats {
	stats := make([]EpisodeStats, 0, t.config.Episodes)
	windowSteps := make([]float64, 0, t.config.ReportEvery)
	windowReturns := make([]float64, 0, t.config.ReportEvery)

	for ep := 1; ep <= t.config.Episodes; ep++ {
		st := t.runEpisode(ep)
		stats = append(stats, st)

		windowSteps = append(windowSteps, float64(st.Steps))
		windowReturns = append(windowReturns, float64(st.Return))
		if t.config.ReportEvery > 0 && ep%t.config.ReportEvery == 0 {
			fmt.Fprintf(t.out, "episode %6d | mean steps %7.2f | mean return %8.3f\n",
				ep, stat.Mean(windowSteps, nil), stat.Mean(windowReturns, nil))
			windowSteps = windowSteps[:0]
			windowReturns = windowReturns[:0]
		}
	}
	return stats
}

// run a single episode and return its statistics
func (t *Trainer) runEpisode(episode int) EpisodeStats {
	t.policy.BeginEpisode(episode)
	pos := t.env.Start()
	st := EpisodeStats{Episode: episode}
	render := t.config.RenderEvery > 0 && episode%t.config.RenderEvery == 0

	for {
		if render {
			fmt.Fprintf(t.out, "\n[episode %d]\n", episode)
			t.renderer.Render(t.out, pos)
		}
		state := t.env.StateID(pos)
		action := t.policy.NextAction(state)
		next, reward, done := t.env.Step(pos, action)
		t.policy.Observe(state, action, reward, t.env.StateID(next), done)

		st.Return += reward
		st.Steps++
		pos = next
		if done {
			st.Reached = true
			return st
		}
		if st.Steps >= t.env.StepLimit() {
			return st
		}
	}
}
