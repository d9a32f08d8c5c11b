package policies

import (
	"testing"

	"github.com/qlearn/qgrid/gridworld"
)

func TestDecayScheduleMonotonic(t *testing.T) {
	s := DecaySchedule{Start: 1.0, Min: 0.05, Rate: 0.0025}
	prev := s.At(1)
	for ep := 2; ep <= 5000; ep++ {
		eps := s.At(ep)
		if eps > prev {
			t.Fatalf("epsilon increased from %f to %f at episode %d", prev, eps, ep)
		}
		if eps < s.Min {
			t.Fatalf("epsilon %f fell below the floor %f at episode %d", eps, s.Min, ep)
		}
		prev = eps
	}
	if got := s.At(100000); got != s.Min {
		t.Fatalf("expected epsilon to settle at the floor, got %f", got)
	}
}

func TestEpsilonGreedyIsGreedyWithoutExploration(t *testing.T) {
	q := NewQTable(3, 3)
	q.Set(0, gridworld.Down, 5.0)
	p := NewEpsilonGreedy(q, 0.1, 0.99, DecaySchedule{Start: 0, Min: 0, Rate: 0}, 1)
	p.BeginEpisode(1)

	for i := 0; i < 50; i++ {
		if got := p.NextAction(0); got != gridworld.Down {
			t.Fatalf("expected the greedy action, got %s", got)
		}
	}
}

func TestEpsilonGreedyObserveMovesTowardTarget(t *testing.T) {
	q := NewQTable(3, 3)
	p := NewEpsilonGreedy(q, 0.5, 0.9, DecaySchedule{Start: 1, Min: 0.05, Rate: 0.0025}, 1)

	// terminal transition: target is the raw reward
	p.Observe(0, gridworld.Right, 10.0, 1, true)
	if got := q.Get(0, gridworld.Right); got != 5.0 {
		t.Fatalf("expected 0 + 0.5*(10-0) = 5, got %f", got)
	}

	// non-terminal transition bootstraps from the best next value
	q.Set(2, gridworld.Up, 4.0)
	p.Observe(1, gridworld.Down, -1.0, 2, false)
	// target = -1 + 0.9*4 = 2.6, update = 0.5*2.6
	if got := q.Get(1, gridworld.Down); got != 1.3 {
		t.Fatalf("expected 1.3, got %f", got)
	}
}

func TestEpsilonGreedyBeginEpisodeSetsEpsilon(t *testing.T) {
	s := DecaySchedule{Start: 1.0, Min: 0.05, Rate: 0.0025}
	p := NewEpsilonGreedy(NewQTable(3, 3), 0.1, 0.99, s, 1)
	p.BeginEpisode(200)
	if got := p.Epsilon(); got != s.At(200) {
		t.Fatalf("expected epsilon %f, got %f", s.At(200), got)
	}
}

func TestSoftmaxPrefersHigherValues(t *testing.T) {
	q := NewQTable(3, 3)
	q.Set(0, gridworld.Left, 5.0)
	p := NewSoftmax(q, 0.1, 0.99, 0.1, 7)

	best := 0
	for i := 0; i < 200; i++ {
		if p.NextAction(0) == gridworld.Left {
			best++
		}
	}
	if best < 190 {
		t.Fatalf("expected the high-value action to dominate, picked %d/200", best)
	}
}

func TestGreedyNeverUpdates(t *testing.T) {
	q := NewQTable(3, 3)
	q.Set(0, gridworld.Right, 1.0)
	g := NewGreedy(q)
	g.BeginEpisode(1)
	g.Observe(0, gridworld.Right, -1.0, 1, false)
	if got := q.Get(0, gridworld.Right); got != 1.0 {
		t.Fatalf("greedy replay must not modify the table, got %f", got)
	}
	if got := g.NextAction(0); got != gridworld.Right {
		t.Fatalf("expected right, got %s", got)
	}
}
