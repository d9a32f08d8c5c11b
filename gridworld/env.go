package gridworld

import "fmt"

// Action is one of the four moves. The numeric order is part of the
// on-disk value-table format and must not change.
type Action int

const (
	Up Action = iota
	Right
	Down
	Left
)

// NumActions is the size of the action space.
const NumActions = 4

var actionNames = [NumActions]string{"up", "right", "down", "left"}

// Actions lists all actions in their fixed order.
var Actions = [NumActions]Action{Up, Right, Down, Left}

func (a Action) String() string {
	if a < 0 || a >= NumActions {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

// Delta is the unit displacement of the action. Y grows downward.
func (a Action) Delta() (dx, dy int) {
	switch a {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	}
	return 0, 0
}

// Position of a cell, 0-indexed from the top-left corner.
type Position struct {
	X int
	Y int
}

func (p Position) Eq(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Bounds accepted by Config.Validate.
const (
	MinSize = 2
	MaxSize = 10
)

// Config describes a grid world. Immutable once the environment is built.
type Config struct {
	Width      int
	Height     int
	Start      Position
	Goal       Position
	Walls      []Position
	StepReward float32
	GoalReward float32
	StepLimit  int
}

// DefaultConfig builds the standard maze: start top-left, goal
// bottom-right, a small cluster of walls on grids of at least 5x5, a
// -1 step reward, +10 goal reward and a step limit of four times the
// grid area.
func DefaultConfig(width, height int) Config {
	cfg := Config{
		Width:      width,
		Height:     height,
		Start:      Position{0, 0},
		Goal:       Position{width - 1, height - 1},
		StepReward: -1.0,
		GoalReward: 10.0,
		StepLimit:  width * height * NumActions,
	}
	if width >= 5 && height >= 5 {
		cfg.Walls = []Position{{2, 1}, {2, 2}, {2, 3}, {1, 3}}
	}
	return cfg
}

func (c Config) inBounds(p Position) bool {
	return p.X >= 0 && p.X < c.Width && p.Y >= 0 && p.Y < c.Height
}

func (c Config) Validate() error {
	if c.Width < MinSize || c.Width > MaxSize || c.Height < MinSize || c.Height > MaxSize {
		return fmt.Errorf("invalid grid size %dx%d, want %d..%d on each side", c.Width, c.Height, MinSize, MaxSize)
	}
	if !c.inBounds(c.Start) {
		return fmt.Errorf("start %s out of bounds", c.Start)
	}
	if !c.inBounds(c.Goal) {
		return fmt.Errorf("goal %s out of bounds", c.Goal)
	}
	for _, w := range c.Walls {
		if !c.inBounds(w) {
			return fmt.Errorf("wall %s out of bounds", w)
		}
		if w.Eq(c.Start) {
			return fmt.Errorf("start %s is a wall", c.Start)
		}
		if w.Eq(c.Goal) {
			return fmt.Errorf("goal %s is a wall", c.Goal)
		}
	}
	if c.StepLimit <= 0 {
		return fmt.Errorf("step limit must be positive, got %d", c.StepLimit)
	}
	if c.StepReward >= 0 {
		return fmt.Errorf("step reward must be negative, got %f", c.StepReward)
	}
	if c.GoalReward <= 0 {
		return fmt.Errorf("goal reward must be positive, got %f", c.GoalReward)
	}
	return nil
}

// Env is a deterministic grid world. All state lives in the immutable
// configuration; Step is a pure function of its arguments.
type Env struct {
	cfg     Config
	blocked []bool
}

func NewEnv(cfg Config) (*Env, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Env{
		cfg:     cfg,
		blocked: make([]bool, cfg.Width*cfg.Height),
	}
	for _, w := range cfg.Walls {
		e.blocked[w.Y*cfg.Width+w.X] = true
	}
	return e, nil
}

func (e *Env) Width() int      { return e.cfg.Width }
func (e *Env) Height() int     { return e.cfg.Height }
func (e *Env) Start() Position { return e.cfg.Start }
func (e *Env) Goal() Position  { return e.cfg.Goal }
func (e *Env) StepLimit() int  { return e.cfg.StepLimit }

// NumStates is the number of state ids, width*height.
func (e *Env) NumStates() int { return e.cfg.Width * e.cfg.Height }

// StateID encodes a position into its table index. Bijective over
// [0, width*height) together with PositionOf.
func (e *Env) StateID(p Position) int {
	return p.Y*e.cfg.Width + p.X
}

func (e *Env) PositionOf(id int) Position {
	return Position{X: id % e.cfg.Width, Y: id / e.cfg.Width}
}

func (e *Env) Wall(p Position) bool {
	return e.blocked[p.Y*e.cfg.Width+p.X]
}

// Valid reports whether the position is inside the grid and not a wall.
func (e *Env) Valid(p Position) bool {
	if !e.cfg.inBounds(p) {
		return false
	}
	return !e.Wall(p)
}

// Step applies the action to the position. Moving into a wall or out of
// bounds leaves the agent where it is and still costs the step reward.
// done is true iff the resulting position is the goal.
func (e *Env) Step(pos Position, a Action) (next Position, reward float32, done bool) {
	dx, dy := a.Delta()
	next = Position{X: pos.X + dx, Y: pos.Y + dy}
	if !e.Valid(next) {
		next = pos
	}
	if next.Eq(e.cfg.Goal) {
		return next, e.cfg.GoalReward, true
	}
	return next, e.cfg.StepReward, false
}
