// Package config loads and validates the CLI's shroud.yaml.
package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/systmms/shroud/internal/logging"
	"github.com/systmms/shroud/pkg/source"
)

// Config is the CLI configuration plus the runtime handles the commands
// share. Path and Logger are set from flags before Load.
type Config struct {
	Path   string          `yaml:"-"`
	Logger *logging.Logger `yaml:"-"`

	Sources []SourceConfig `yaml:"sources"`
}

// SourceConfig declares one named source.
type SourceConfig struct {
	Name    string            `yaml:"name"`
	Type    string            `yaml:"type"`
	Options map[string]string `yaml:"options"`
}

// schema is the JSON Schema every shroud.yaml must satisfy before it is
// decoded into Config.
const schema = `{
  "type": "object",
  "required": ["sources"],
  "additionalProperties": false,
  "properties": {
    "sources": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name", "type"],
        "additionalProperties": false,
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "type": {"type": "string", "enum": ["env", "keyring", "static", "aws"]},
          "options": {"type": "object", "additionalProperties": {"type": "string"}}
        }
      }
    }
  }
}`

// Load reads, schema-validates, and decodes the config file at c.Path.
func (c *Config) Load() error {
	raw, err := os.ReadFile(c.Path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", c.Path, err)
	}

	// Validate against the schema before decoding, so misconfigurations
	// fail with field-level messages instead of zero-valued structs.
	var doc interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parsing config %s: %w", c.Path, err)
	}
	jsonDoc, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("preparing config %s for validation: %w", c.Path, err)
	}
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(jsonDoc),
	)
	if err != nil {
		return fmt.Errorf("validating config %s: %w", c.Path, err)
	}
	if !result.Valid() {
		var msgs []string
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return fmt.Errorf("config %s is invalid:\n  - %s", c.Path, strings.Join(msgs, "\n  - "))
	}

	return yaml.Unmarshal(raw, c)
}

// BuildRegistry constructs every declared source and registers it.
func (c *Config) BuildRegistry(ctx context.Context) (*source.Registry, error) {
	reg := source.NewRegistry()
	for _, sc := range c.Sources {
		src, err := buildSource(ctx, sc)
		if err != nil {
			return nil, fmt.Errorf("source %q: %w", sc.Name, err)
		}
		reg.Register(src)
	}
	return reg, nil
}

func buildSource(ctx context.Context, sc SourceConfig) (source.Source, error) {
	switch sc.Type {
	case "env":
		if file := sc.Options["file"]; file != "" {
			return source.NewEnvFile(sc.Name, file)
		}
		return source.NewEnv(sc.Name), nil
	case "keyring":
		var opts []source.KeyringOption
		if prefix := sc.Options["service_prefix"]; prefix != "" {
			opts = append(opts, source.WithServicePrefix(prefix))
		}
		return source.NewKeyring(sc.Name, opts...), nil
	case "static":
		return source.NewStatic(sc.Name, sc.Options), nil
	case "aws":
		region := sc.Options["region"]
		if region == "" {
			return nil, fmt.Errorf("aws source requires options.region")
		}
		return source.NewAWS(ctx, sc.Name, region)
	default:
		// The schema already rejects unknown types; this guards direct
		// construction of Config in code.
		return nil, fmt.Errorf("unknown source type %q", sc.Type)
	}
}
