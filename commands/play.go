package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qlearn/qgrid/agent"
)

func PlayCommand() *cobra.Command {
	var episodes int
	var render bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Replay the greedy policy without exploration",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := buildEnv()
			if err != nil {
				return err
			}
			table, err := loadOrNewTable(env)
			if err != nil {
				return err
			}
			if episodes <= 0 {
				fmt.Println("nothing to do: no play episodes requested")
				return nil
			}
			agent.NewEvaluator(env, table, render, os.Stdout).Run(episodes)
			return nil
		},
	}
	cmd.Flags().IntVarP(&episodes, "episodes", "e", 3, "Number of greedy episodes to replay")
	cmd.Flags().BoolVar(&render, "render", false, "Render the grid at every step")
	return cmd
}
