package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/qlearn/qgrid/gridworld"
	"github.com/qlearn/qgrid/policies"
)

var (
	width    int
	height   int
	alpha    float64
	gamma    float64
	epsStart float64
	epsMin   float64
	epsDecay float64
	seed     uint64
	loadPath string
	savePath string
)

func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:   "qgrid",
		Short: "Tabular Q-learning on a small deterministic grid world",
	}
	rootCommand.PersistentFlags().IntVar(&width, "width", 5, "Grid width (2..10)")
	rootCommand.PersistentFlags().IntVar(&height, "height", 5, "Grid height (2..10)")
	rootCommand.PersistentFlags().Float64Var(&alpha, "alpha", 0.1, "Learning rate")
	rootCommand.PersistentFlags().Float64Var(&gamma, "gamma", 0.99, "Discount factor")
	rootCommand.PersistentFlags().Float64Var(&epsStart, "eps-start", 1.0, "Initial epsilon")
	rootCommand.PersistentFlags().Float64Var(&epsMin, "eps-min", 0.05, "Epsilon floor")
	rootCommand.PersistentFlags().Float64Var(&epsDecay, "eps-decay", 0.0025, "Epsilon decay rate per episode")
	rootCommand.PersistentFlags().Uint64Var(&seed, "seed", uint64(time.Now().UnixNano()), "Random seed")
	rootCommand.PersistentFlags().StringVar(&loadPath, "load", "", "Load the value table from the given file")
	rootCommand.PersistentFlags().StringVar(&savePath, "save", "", "Save the value table to the given file after training")
	// adding the subcommands here
	rootCommand.AddCommand(TrainCommand())
	rootCommand.AddCommand(PlayCommand())
	rootCommand.AddCommand(ShowCommand())
	rootCommand.AddCommand(ServeCommand())
	return rootCommand
}

// buildEnv validates the grid flags and constructs the environment.
func buildEnv() (*gridworld.Env, error) {
	return gridworld.NewEnv(gridworld.DefaultConfig(width, height))
}

// loadOrNewTable returns a fresh zeroed table unless --load was given.
// A failed load is an error, never a silent fresh table, so operator
// mistakes do not go unnoticed.
func loadOrNewTable(env *gridworld.Env) (*policies.QTable, error) {
	if loadPath == "" {
		return policies.NewQTable(env.Width(), env.Height()), nil
	}
	table, err := policies.Load(loadPath)
	if err != nil {
		return nil, err
	}
	if err := table.CheckDims(env.Width(), env.Height()); err != nil {
		return nil, err
	}
	fmt.Printf("loaded table %dx%d from %s\n", table.Width(), table.Height(), loadPath)
	return table, nil
}
