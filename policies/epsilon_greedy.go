package policies

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/qlearn/qgrid/gridworld"
)

// DecaySchedule is an exponential epsilon decay with a floor. The
// schedule is non-increasing over episodes and bounded below by Min.
type DecaySchedule struct {
	Start float64
	Min   float64
	Rate  float64
}

// At returns epsilon for the given episode, numbered from 1.
func (s DecaySchedule) At(episode int) float64 {
	return math.Max(s.Min, s.Start*math.Exp(-s.Rate*float64(episode)))
}

// EpsilonGreedy explores with a decaying epsilon and applies the
// Q-learning update to its table.
type EpsilonGreedy struct {
	table    *QTable
	alpha    float64
	gamma    float64
	schedule DecaySchedule
	epsilon  float64
	rand     *rand.Rand
}

var _ Policy = &EpsilonGreedy{}

func NewEpsilonGreedy(table *QTable, alpha, gamma float64, schedule DecaySchedule, seed uint64) *EpsilonGreedy {
	return &EpsilonGreedy{
		table:    table,
		alpha:    alpha,
		gamma:    gamma,
		schedule: schedule,
		epsilon:  schedule.Start,
		rand:     rand.New(rand.NewSource(seed)),
	}
}

// BeginEpisode recomputes epsilon for the episode. Epsilon stays fixed
// for all steps of the episode.
func (e *EpsilonGreedy) BeginEpisode(episode int) {
	e.epsilon = e.schedule.At(episode)
}

func (e *EpsilonGreedy) Epsilon() float64 { return e.epsilon }

func (e *EpsilonGreedy) NextAction(state int) gridworld.Action {
	if e.rand.Float64() < e.epsilon {
		return gridworld.Action(e.rand.Intn(gridworld.NumActions))
	}
	return e.table.BestAction(state)
}

// Observe applies the temporal-difference update. Terminal transitions
// bootstrap from zero.
func (e *EpsilonGreedy) Observe(state int, action gridworld.Action, reward float32, nextState int, done bool) {
	target := float64(reward)
	if !done {
		target += e.gamma * float64(e.table.BestValue(nextState))
	}
	cur := float64(e.table.Get(state, action))
	e.table.Set(state, action, float32(cur+e.alpha*(target-cur)))
}
