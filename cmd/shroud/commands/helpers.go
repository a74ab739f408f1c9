package commands

import (
	"context"

	"github.com/systmms/shroud/internal/config"
	sherrors "github.com/systmms/shroud/internal/errors"
	"github.com/systmms/shroud/pkg/source"
)

// loadSource loads the config and returns the named source from the built
// registry.
func loadSource(ctx context.Context, cfg *config.Config, name string) (source.Source, error) {
	if name == "" {
		return nil, sherrors.UserError{
			Message:    "Source name is required",
			Suggestion: "Use --source <name> with a source from shroud.yaml",
		}
	}
	if err := cfg.Load(); err != nil {
		return nil, err
	}
	reg, err := cfg.BuildRegistry(ctx)
	if err != nil {
		return nil, err
	}
	return reg.Get(name)
}
