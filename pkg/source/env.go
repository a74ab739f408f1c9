package source

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/systmms/shroud/pkg/secret"
)

// Env resolves keys against the process environment, optionally overlaid
// with variables read from a dotenv file. File variables win over process
// ones, matching how a local .env is normally used.
type Env struct {
	name     string
	fileVars map[string]string
}

// NewEnv returns a source over the process environment.
func NewEnv(name string) *Env {
	return &Env{name: name}
}

// NewEnvFile returns a source over the process environment overlaid with
// the variables in the dotenv file at path. The file is read once, up
// front; it is not watched.
func NewEnvFile(name, path string) (*Env, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}
	return &Env{name: name, fileVars: vars}, nil
}

// Name returns the source identifier.
func (e *Env) Name() string { return e.name }

// Resolve looks key up in the file overlay, then the process environment.
// Unset and empty variables both count as missing: an empty secret from
// the environment is always a misconfiguration.
func (e *Env) Resolve(ctx context.Context, key string) (*secret.Secret[string], error) {
	if v, ok := e.fileVars[key]; ok && v != "" {
		return wrap(v)
	}
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return wrap(v)
	}
	return nil, &NotFoundError{Source: e.name, Key: key}
}
