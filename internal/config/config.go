// Package config loads the lvstep driver configuration: built-in defaults,
// then an optional YAML file, then command-line overrides, then validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full driver configuration.
type Config struct {
	Algorithm string  `yaml:"algorithm" validate:"required"`
	Start     string  `yaml:"start"`
	Target    string  `yaml:"target"`
	Seed      int64   `yaml:"seed"`
	Graph     Graph   `yaml:"graph"`
	Log       Log     `yaml:"log"`
	Run       Run     `yaml:"run"`
	Library   Library `yaml:"library"`
	Metrics   Metrics `yaml:"metrics"`
}

// Graph selects the input graph: a file, or the builtin sample.
type Graph struct {
	// Path is a .json/.yaml/.yml graph file; empty means the sample graph.
	Path string `yaml:"path"`
	// Saved names an entry in the library to load instead of Path.
	Saved    string `yaml:"saved"`
	Directed bool   `yaml:"directed"`
}

// Log configures the zap logger.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json console"`
}

// Run bounds a non-interactive run.
type Run struct {
	StepLimit   int  `yaml:"step_limit" validate:"gte=0"`
	Interactive bool `yaml:"interactive"`
}

// Library locates the saved-graph file.
type Library struct {
	Path string `yaml:"path" validate:"omitempty,endswith=.json|endswith=.yaml|endswith=.yml"`
}

// Metrics configures the optional Prometheus endpoint.
type Metrics struct {
	// Addr is a listen address such as ":9090"; empty disables the endpoint.
	Addr string `yaml:"addr" validate:"omitempty,hostname_port"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Algorithm: "BFS",
		Graph:     Graph{Directed: true},
		Log:       Log{Level: "info", Format: "console"},
		Run:       Run{StepLimit: 10_000},
		Library:   Library{Path: "lvstep-graphs.json"},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Graph.Path != "" && c.Graph.Saved != "" {
		return fmt.Errorf("%w: graph.path and graph.saved are mutually exclusive", ErrInvalid)
	}

	return nil
}

// Load returns Default overlaid with the YAML file at path. An empty path
// skips the file. The result is not validated; call Validate after applying
// overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}
