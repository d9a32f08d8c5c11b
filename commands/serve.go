package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qlearn/qgrid/inspect"
)

func ServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a trained table for inspection over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if loadPath == "" {
				return fmt.Errorf("serve requires --load")
			}
			env, err := buildEnv()
			if err != nil {
				return err
			}
			table, err := loadOrNewTable(env)
			if err != nil {
				return err
			}
			fmt.Printf("serving table on %s\n", addr)
			return inspect.NewServer(env, table).Run(addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "Listen address")
	return cmd
}
