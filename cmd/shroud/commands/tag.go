package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/awnumar/memguard"
	"github.com/spf13/cobra"
	"github.com/systmms/shroud/internal/config"
	"github.com/systmms/shroud/pkg/secret"
)

func NewTagCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag [value]",
		Short: "Print the deterministic tag for a value",
		Long: `Derive the deterministic, non-reversible tag for a plaintext value.

The value is taken from the argument, or read from stdin when no argument
is given. Equal inputs always yield equal tags, so tags can be compared
across systems and log lines without exposing the value.

Examples:
  shroud tag my-api-key
  printf '%s' "$TOKEN" | shroud tag`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				fmt.Fprintln(cmd.OutOrStdout(), secret.TagString(args[0]))
				return nil
			}

			raw, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading value from stdin: %w", err)
			}
			// A trailing newline from `echo` would silently change the tag.
			trimmed := strings.TrimRight(string(raw), "\r\n")
			memguard.WipeBytes(raw)
			fmt.Fprintln(cmd.OutOrStdout(), secret.TagString(trimmed))
			return nil
		},
	}
	return cmd
}
