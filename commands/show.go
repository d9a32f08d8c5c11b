package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qlearn/qgrid/gridworld"
)

var actionGlyphs = [gridworld.NumActions]string{"^", ">", "v", "<"}

func ShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render the maze and the greedy action for each cell",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := buildEnv()
			if err != nil {
				return err
			}
			table, err := loadOrNewTable(env)
			if err != nil {
				return err
			}

			gridworld.NewRenderer(env, true).Render(os.Stdout, env.Start())
			fmt.Println()
			for y := 0; y < env.Height(); y++ {
				for x := 0; x < env.Width(); x++ {
					p := gridworld.Position{X: x, Y: y}
					switch {
					case env.Wall(p):
						fmt.Print("# ")
					case p.Eq(env.Goal()):
						fmt.Print("G ")
					default:
						fmt.Printf("%s ", actionGlyphs[table.BestAction(env.StateID(p))])
					}
				}
				fmt.Println()
			}
			return nil
		},
	}
	return cmd
}
