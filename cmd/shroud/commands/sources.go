package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/systmms/shroud/internal/config"
)

func NewSourcesCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "List configured sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Load(); err != nil {
				return err
			}
			if len(cfg.Sources) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no sources configured")
				return nil
			}
			for _, sc := range cfg.Sources {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", sc.Name, sc.Type)
			}
			return nil
		},
	}
	return cmd
}
