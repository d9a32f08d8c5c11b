package policies

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/qlearn/qgrid/gridworld"
)

// Softmax samples actions from a Boltzmann distribution over the
// Q-values. Lower temperatures concentrate the distribution on the
// best action.
type Softmax struct {
	table       *QTable
	alpha       float64
	gamma       float64
	temperature float64
	rand        *rand.Rand
}

var _ Policy = &Softmax{}

func NewSoftmax(table *QTable, alpha, gamma, temperature float64, seed uint64) *Softmax {
	return &Softmax{
		table:       table,
		alpha:       alpha,
		gamma:       gamma,
		temperature: temperature,
		rand:        rand.New(rand.NewSource(seed)),
	}
}

func (s *Softmax) BeginEpisode(int) {}

func (s *Softmax) NextAction(state int) gridworld.Action {
	sum := float64(0)
	weights := make([]float64, gridworld.NumActions)
	for a := 0; a < gridworld.NumActions; a++ {
		val := math.Exp(float64(s.table.Get(state, gridworld.Action(a))) / s.temperature)
		weights[a] = val
		sum += val
	}
	for a := range weights {
		weights[a] /= sum
	}
	i, ok := sampleuv.NewWeighted(weights, s.rand).Take()
	if !ok {
		return s.table.BestAction(state)
	}
	return gridworld.Action(i)
}

func (s *Softmax) Observe(state int, action gridworld.Action, reward float32, nextState int, done bool) {
	target := float64(reward)
	if !done {
		target += s.gamma * float64(s.table.BestValue(nextState))
	}
	cur := float64(s.table.Get(state, action))
	s.table.Set(state, action, float32(cur+s.alpha*(target-cur)))
}
