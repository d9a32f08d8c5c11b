package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qlearn/qgrid/agent"
	"github.com/qlearn/qgrid/policies"
	"github.com/qlearn/qgrid/util"
)

func TrainCommand() *cobra.Command {
	var episodes int
	var reportEvery int
	var renderEvery int
	var explore string
	var temperature float64
	var plotPath string
	var heatmapPath string
	var logPath string

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train the agent",
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
				fmt.Println("nothing to do: no training episodes requested")
				return nil
			}

			var policy policies.Policy
			switch explore {
			case "epsilon":
				schedule := policies.DecaySchedule{Start: epsStart, Min: epsMin, Rate: epsDecay}
				policy = policies.NewEpsilonGreedy(table, alpha, gamma, schedule, seed)
			case "softmax":
				if temperature <= 0 {
					return fmt.Errorf("temperature must be positive, got %f", temperature)
				}
				policy = policies.NewSoftmax(table, alpha, gamma, temperature, seed)
			default:
				return fmt.Errorf("unknown exploration strategy %q", explore)
			}

			trainer := agent.NewTrainer(&agent.Config{
				Episodes:    episodes,
				ReportEvery: reportEvery,
				RenderEvery: renderEvery,
			}, env, policy)
			stats := trainer.Run()

			if logPath != "" {
				if err := appendWindowLog(stats, reportEvery, logPath); err != nil {
					return fmt.Errorf("write episode log: %w", err)
				}
			}
			if plotPath != "" {
				if err := agent.SaveReturnPlot(stats, reportEvery, plotPath); err != nil {
					return fmt.Errorf("save return plot: %w", err)
				}
			}
			if heatmapPath != "" {
				if err := agent.SaveValueHeatMap(env, table, heatmapPath); err != nil {
					return fmt.Errorf("save value heat map: %w", err)
				}
			}
			if savePath != "" {
				if err := table.Save(savePath); err != nil {
					return err
				}
				fmt.Printf("saved table to %s\n", savePath)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&episodes, "episodes", "e", 10000, "Number of training episodes")
	cmd.Flags().IntVar(&reportEvery, "report-every", 100, "Print window statistics every N episodes (0 disables)")
	cmd.Flags().IntVar(&renderEvery, "render-every", 0, "Render the grid every N episodes (0 disables)")
	cmd.Flags().StringVar(&explore, "explore", "epsilon", "Exploration strategy: epsilon or softmax")
	cmd.Flags().Float64Var(&temperature, "temperature", 1.0, "Softmax temperature")
	cmd.Flags().StringVar(&plotPath, "plot", "", "Save a mean-return line chart to the given PNG file")
	cmd.Flags().StringVar(&heatmapPath, "heatmap", "", "Save a state-value heat map to the given PNG file")
	cmd.Flags().StringVar(&logPath, "log", "", "Append window statistics to the given CSV file")
	return cmd
}

// appendWindowLog appends one CSV row per reporting window:
// episode, mean steps, mean return.
func appendWindowLog(stats []agent.EpisodeStats, window int, path string) error {
	if window <= 0 {
		window = 100
	}
	lines := make([]string, 0, len(stats)/window)
	steps, ret := float64(0), float64(0)
	for i, st := range stats {
		steps += float64(st.Steps)
		ret += float64(st.Return)
		if (i+1)%window == 0 {
			lines = append(lines, fmt.Sprintf("%d,%.2f,%.3f",
				st.Episode, steps/float64(window), ret/float64(window)))
			steps, ret = 0, 0
		}
	}
	return util.AppendToFile(path, lines...)
}
