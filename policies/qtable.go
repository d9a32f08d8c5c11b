package policies

import (
	"fmt"

	"github.com/qlearn/qgrid/gridworld"
)

// QTable holds one value estimate per (state, action) pair in a dense
// slice, state-major and action-minor in the fixed action order.
type QTable struct {
	width  int
	height int
	values []float32
}

func NewQTable(width, height int) *QTable {
	return &QTable{
		width:  width,
		height: height,
		values: make([]float32, width*height*gridworld.NumActions),
	}
}

func (q *QTable) Width() int  { return q.width }
func (q *QTable) Height() int { return q.height }

// States is the number of state ids covered by the table.
func (q *QTable) States() int { return q.width * q.height }

func (q *QTable) index(state int, a gridworld.Action) int {
	return state*gridworld.NumActions + int(a)
}

func (q *QTable) Get(state int, a gridworld.Action) float32 {
	return q.values[q.index(state, a)]
}

func (q *QTable) Set(state int, a gridworld.Action, val float32) {
	q.values[q.index(state, a)] = val
}

// BestAction is the argmax over the four actions for the state. Ties
// break toward the lowest action index, so the result is deterministic.
func (q *QTable) BestAction(state int) gridworld.Action {
	best := gridworld.Up
	bestVal := q.values[q.index(state, gridworld.Up)]
	for a := 1; a < gridworld.NumActions; a++ {
		if val := q.values[q.index(state, gridworld.Action(a))]; val > bestVal {
			best = gridworld.Action(a)
			bestVal = val
		}
	}
	return best
}

// BestValue is the max over the four actions, used as the bootstrap
// target of the Q-learning update.
func (q *QTable) BestValue(state int) float32 {
	bestVal := q.values[q.index(state, gridworld.Up)]
	for a := 1; a < gridworld.NumActions; a++ {
		if val := q.values[q.index(state, gridworld.Action(a))]; val > bestVal {
			bestVal = val
		}
	}
	return bestVal
}

// CheckDims fails when the table does not cover exactly the given grid.
// A mismatch is a configuration error, never reconciled by resizing.
func (q *QTable) CheckDims(width, height int) error {
	if q.width != width || q.height != height {
		return fmt.Errorf("table size %dx%d does not match grid size %dx%d", q.width, q.height, width, height)
	}
	return nil
}
