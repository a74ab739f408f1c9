package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/systmms/shroud/cmd/shroud/commands"
	"github.com/systmms/shroud/internal/config"
	"github.com/systmms/shroud/internal/logging"
	"github.com/systmms/shroud/internal/metrics"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configFile string
		noColor    bool
		debug      bool
	)

	cfg := &config.Config{}

	rootCmd := &cobra.Command{
		Use:   "shroud",
		Short: "Obfuscated secret containers - fetch, tag, and inject secrets",
		Long: `shroud resolves secrets from configured sources into obfuscated
in-memory containers and exposes them only as deterministic tags, or
injects them into a child process environment.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg.Path = configFile
			cfg.Logger = logging.New(debug, noColor)
			metrics.Install()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "shroud.yaml", "Config file path")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(
		commands.NewGetCommand(cfg),
		commands.NewTagCommand(cfg),
		commands.NewExecCommand(cfg),
		commands.NewSourcesCommand(cfg),
	)

	return rootCmd.Execute()
}
