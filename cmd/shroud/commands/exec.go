package commands

import (
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/systmms/shroud/internal/config"
	sherrors "github.com/systmms/shroud/internal/errors"
	"github.com/systmms/shroud/pkg/secret"
)

func NewExecCommand(cfg *config.Config) *cobra.Command {
	var (
		sourceName    string
		envPairs      []string
		metricsListen string
	)

	cmd := &cobra.Command{
		Use:   "exec -- command [args...]",
		Short: "Run a command with secrets injected into its environment",
		Long: `Resolve secrets and run a command with them set as environment
variables. Each --env takes NAME=KEY: the secret at KEY is resolved from
the source and exported to the child as NAME. Containers are destroyed as
soon as the child environment is assembled; the parent never keeps a
readable copy.

Examples:
  shroud exec --source aws-prod --env PGPASSWORD=prod/db/password -- psql -h db.internal
  shroud exec --source env --env API_KEY=STAGING_API_KEY --metrics-listen :9402 -- ./worker`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := loadSource(cmd.Context(), cfg, sourceName)
			if err != nil {
				return err
			}

			childEnv := os.Environ()
			for _, pair := range envPairs {
				name, key, ok := strings.Cut(pair, "=")
				if !ok || name == "" || key == "" {
					return sherrors.UserError{
						Message:    fmt.Sprintf("--env %q is not of the form NAME=KEY", pair),
						Suggestion: "Map a child variable to a secret key, e.g. --env PGPASSWORD=prod/db/password",
					}
				}
				sec, err := src.Resolve(cmd.Context(), key)
				if err != nil {
					return err
				}
				entry, err := secret.UseAndDestroy(sec, func(v string) string {
					return name + "=" + v
				})
				if err != nil {
					return err
				}
				childEnv = append(childEnv, entry)
				cfg.Logger.Debug("injecting %s (from key %q)", name, key)
			}

			if metricsListen != "" {
				go func() {
					mux := http.NewServeMux()
					mux.Handle("/metrics", promhttp.Handler())
					if err := http.ListenAndServe(metricsListen, mux); err != nil {
						cfg.Logger.Warn("metrics listener: %v", err)
					}
				}()
				cfg.Logger.Debug("serving metrics on %s", metricsListen)
			}

			cfg.Logger.Info("running %s with %d injected secret(s)", args[0], len(envPairs))

			child := exec.CommandContext(cmd.Context(), args[0], args[1:]...)
			child.Stdin = os.Stdin
			child.Stdout = cmd.OutOrStdout()
			child.Stderr = cmd.ErrOrStderr()
			child.Env = childEnv
			return child.Run()
		},
	}

	cmd.Flags().StringVar(&sourceName, "source", "", "Source name from shroud.yaml")
	cmd.Flags().StringArrayVar(&envPairs, "env", nil, "NAME=KEY mapping of child env var to secret key (repeatable)")
	cmd.Flags().StringVar(&metricsListen, "metrics-listen", "", "Serve Prometheus lifecycle metrics on this address while the child runs")

	return cmd
}
