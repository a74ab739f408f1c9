package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/systmms/shroud/internal/config"
	sherrors "github.com/systmms/shroud/internal/errors"
	"github.com/systmms/shroud/pkg/secret"
)

func NewGetCommand(cfg *config.Config) *cobra.Command {
	var (
		sourceName string
		key        string
		reveal     bool
	)

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Resolve a secret and print its tag",
		Long: `Resolve a single secret from a configured source.

By default only the secret's deterministic tag is printed - a stable,
non-reversible token safe to log and compare. With --reveal the plaintext
is written to stdout exactly once and the container is destroyed.

Examples:
  # Print the tag (safe)
  shroud get --source aws-prod --key prod/db/password

  # Reveal the plaintext once, for piping into another tool
  shroud get --source aws-prod --key prod/db/password --reveal`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if key == "" {
				return sherrors.UserError{
					Message:    "Key is required",
					Suggestion: "Use --key <name> to specify which secret to resolve",
				}
			}
			src, err := loadSource(cmd.Context(), cfg, sourceName)
			if err != nil {
				return err
			}

			sec, err := src.Resolve(cmd.Context(), key)
			if err != nil {
				return err
			}

			if reveal {
				out, err := secret.UseAndDestroy(sec, func(v string) string { return v })
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				cfg.Logger.Debug("revealed %q from %q and destroyed the container", key, sourceName)
				return nil
			}

			defer sec.Destroy()
			tag, err := secret.Use(sec, secret.TagString)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tag)
			return nil
		},
	}

	cmd.Flags().StringVar(&sourceName, "source", "", "Source name from shroud.yaml")
	cmd.Flags().StringVar(&key, "key", "", "Key to resolve")
	cmd.Flags().BoolVar(&reveal, "reveal", false, "Print the plaintext once instead of the tag")

	return cmd
}
