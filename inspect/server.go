package inspect

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qlearn/qgrid/gridworld"
	"github.com/qlearn/qgrid/policies"
)

// Server exposes a trained value table for inspection over HTTP. It is
// read-only and never touches learning state.
type Server struct {
	env    *gridworld.Env
	table  *policies.QTable
	engine *gin.Engine
}

func NewServer(env *gridworld.Env, table *policies.QTable) *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		env:    env,
		table:  table,
		engine: gin.New(),
	}
	s.engine.GET("/table", s.handleTable)
	s.engine.GET("/policy", s.handlePolicy)
	s.engine.GET("/grid", s.handleGrid)
	return s
}

// Handler returns the underlying HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run blocks serving on the given address.
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func (s *Server) handleTable(c *gin.Context) {
	values := make([][]float32, s.env.NumStates())
	for state := range values {
		row := make([]float32, gridworld.NumActions)
		for a := 0; a < gridworld.NumActions; a++ {
			row[a] = s.table.Get(state, gridworld.Action(a))
		}
		values[state] = row
	}
	c.JSON(http.StatusOK, gin.H{
		"width":   s.env.Width(),
		"height":  s.env.Height(),
		"actions": []string{"up", "right", "down", "left"},
		"values":  values,
	})
}

func (s *Server) handlePolicy(c *gin.Context) {
	cells := make([]gin.H, 0, s.env.NumStates())
	for state := 0; state < s.env.NumStates(); state++ {
		pos := s.env.PositionOf(state)
		if s.env.Wall(pos) {
			continue
		}
		cells = append(cells, gin.H{
			"x":      pos.X,
			"y":      pos.Y,
			"action": s.table.BestAction(state).String(),
			"value":  s.table.BestValue(state),
		})
	}
	c.JSON(http.StatusOK, cells)
}

func (s *Server) handleGrid(c *gin.Context) {
	var buf bytes.Buffer
	gridworld.NewRenderer(s.env, false).Render(&buf, s.env.Start())
	c.String(http.StatusOK, buf.String())
}
