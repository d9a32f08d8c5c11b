package agent

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/qlearn/qgrid/gridworld"
	"github.com/qlearn/qgrid/policies"
)

func newEnv(t *testing.T, cfg gridworld.Config) *gridworld.Env {
	t.Helper()
	env, err := gridworld.NewEnv(cfg)
	if err != nil {
		t.Fatalf("unexpected config error: %v", err)
	}
	return env
}

// Trains on the standard 5x5 maze and checks that the greedy policy
// takes the known shortest path: 8 steps, return 7*(-1)+10 = 3.
func TestTrainingConvergesOnDefaultMaze(t *testing.T) {
	env := newEnv(t, gridworld.DefaultConfig(5, 5))
	table := policies.NewQTable(5, 5)
	schedule := policies.DecaySchedule{Start: 1.0, Min: 0.05, Rate: 0.0025}
	policy := policies.NewEpsilonGreedy(table, 0.1, 0.99, schedule, 42)

	trainer := NewTrainer(&Config{Episodes: 10000, Out: io.Discard}, env, policy)
	trainer.Run()

	stats := NewEvaluator(env, table, false, io.Discard).Run(1)
	if !stats[0].Reached {
		t.Fatalf("greedy policy did not reach the goal in %d steps", stats[0].Steps)
	}
	if stats[0].Steps != 8 {
		t.Fatalf("expected the shortest path of 8 steps, got %d", stats[0].Steps)
	}
	if stats[0].Return != 3.0 {
		t.Fatalf("expected return 3.0, got %f", stats[0].Return)
	}
}

func TestEvaluationDeterministic(t *testing.T) {
	env := newEnv(t, gridworld.DefaultConfig(5, 5))
	table := policies.NewQTable(5, 5)
	for state := 0; state < table.States(); state++ {
		for a := 0; a < gridworld.NumActions; a++ {
			table.Set(state, gridworld.Action(a), float32((state*7+a*3)%11)-5)
		}
	}

	first := NewEvaluator(env, table, false, io.Discard).Run(5)
	second := NewEvaluator(env, table, false, io.Discard).Run(5)
	if len(first) != len(second) {
		t.Fatalf("episode counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("episode %d diverged: %+v vs %+v", i+1, first[i], second[i])
		}
	}
}

// An agent walled in at the start can never reach the goal; the step
// limit must end every episode.
func TestStepLimitEndsWalledInEpisodes(t *testing.T) {
	cfg := gridworld.DefaultConfig(5, 5)
	cfg.Walls = []gridworld.Position{{X: 1, Y: 0}, {X: 0, Y: 1}}
	env := newEnv(t, cfg)
	table := policies.NewQTable(5, 5)
	policy := policies.NewEpsilonGreedy(table, 0.1, 0.99, policies.DecaySchedule{Start: 1, Min: 0.05, Rate: 0.0025}, 3)

	stats := NewTrainer(&Config{Episodes: 3, Out: io.Discard}, env, policy).Run()
	for _, st := range stats {
		if st.Reached {
			t.Fatalf("episode %d reached an unreachable goal", st.Episode)
		}
		if st.Steps != env.StepLimit() {
			t.Fatalf("episode %d ran %d steps, want the step limit %d", st.Episode, st.Steps, env.StepLimit())
		}
	}
}

func TestTrainerReportsPerWindow(t *testing.T) {
	env := newEnv(t, gridworld.DefaultConfig(4, 4))
	table := policies.NewQTable(4, 4)
	policy := policies.NewEpsilonGreedy(table, 0.1, 0.99, policies.DecaySchedule{Start: 1, Min: 0.05, Rate: 0.0025}, 9)

	var buf bytes.Buffer
	NewTrainer(&Config{Episodes: 250, ReportEvery: 100, Out: &buf}, env, policy).Run()

	reports := strings.Count(buf.String(), "episode")
	if reports != 2 {
		t.Fatalf("expected 2 window reports for 250 episodes, got %d", reports)
	}
}

func TestTrainerReturnAccumulation(t *testing.T) {
	env := newEnv(t, gridworld.DefaultConfig(5, 5))
	table := policies.NewQTable(5, 5)
	policy := policies.NewEpsilonGreedy(table, 0.1, 0.99, policies.DecaySchedule{Start: 0.5, Min: 0.05, Rate: 0.0025}, 11)

	stats := NewTrainer(&Config{Episodes: 50, Out: io.Discard}, env, policy).Run()
	for _, st := range stats {
		want := float32(st.Steps) * -1.0
		if st.Reached {
			want = float32(st.Steps-1)*-1.0 + 10.0
		}
		if st.Return != want {
			t.Fatalf("episode %d return %f does not match %d steps (reached=%v)",
				st.Episode, st.Return, st.Steps, st.Reached)
		}
	}
}
