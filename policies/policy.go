package policies

import "github.com/qlearn/qgrid/gridworld"

// Policy selects actions during an episode and absorbs the transitions
// the environment produces.
type Policy interface {
	// BeginEpisode is called once before each episode, numbered from 1.
	BeginEpisode(episode int)
	// NextAction picks the action to take in the given state.
	NextAction(state int) gridworld.Action
	// Observe feeds one transition back into the policy.
	Observe(state int, action gridworld.Action, reward float32, nextState int, done bool)
}

// Greedy always follows the highest-valued action. Used to replay a
// learned policy without exploration; two replays over the same table
// take identical action sequences.
type Greedy struct {
	table *QTable
}

var _ Policy = &Greedy{}

func NewGreedy(table *QTable) *Greedy {
	return &Greedy{table: table}
}

func (g *Greedy) BeginEpisode(int) {}

func (g *Greedy) NextAction(state int) gridworld.Action {
	return g.table.BestAction(state)
}

func (g *Greedy) Observe(int, gridworld.Action, float32, int, bool) {}
