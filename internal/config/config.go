// Package config provides project configuration management.
//
// This package handles reading and writing .skillscout/config.yaml files.
// The config lets a project disable bundled skills or override their
// priorities without rebuilding the binary.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/skillscout/cli/internal/registry"
)

// DefaultPath is the config file location relative to the project root.
const DefaultPath = ".skillscout/config.yaml"

// ProjectConfig represents the .skillscout/config.yaml file.
type ProjectConfig struct {
	// Disabled lists skill names excluded from matching and listing.
	Disabled []string `yaml:"disabled,omitempty"`

	// Priorities maps skill names to priority overrides.
	Priorities map[string]int `yaml:"priorities,omitempty"`
}

// LoadProjectConfig reads a project configuration from a file.
func LoadProjectConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Guarantee the map is never nil so callers don't need defensive checks
	if cfg.Priorities == nil {
		cfg.Priorities = make(map[string]int)
	}

	return &cfg, nil
}

// WriteProjectConfig writes a project configuration to a file, creating the
// parent directory if needed.
func WriteProjectConfig(path string, cfg *ProjectConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := "# skillscout configuration\n# Generated by: skillscout init\n\n"

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, append([]byte(header), data...), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Lint reports non-fatal problems in the config: skill names that do not
// exist in the registry. Typos here would otherwise disable nothing and
// override nothing, silently.
func (c *ProjectConfig) Lint(reg *registry.Registry) []string {
	if c == nil {
		return nil
	}
	var warnings []string
	for _, name := range c.Disabled {
		if _, ok := reg.Get(name); !ok {
			warnings = append(warnings, fmt.Sprintf("disabled: unknown skill %q", name))
		}
	}
	for name := range c.Priorities {
		if _, ok := reg.Get(name); !ok {
			warnings = append(warnings, fmt.Sprintf("priorities: unknown skill %q", name))
		}
	}
	sort.Strings(warnings)
	return warnings
}

// Apply returns a registry view with this config's disables and priority
// overrides applied. The input registry is not modified. A nil config
// returns an equivalent registry unchanged.
func (c *ProjectConfig) Apply(reg *registry.Registry) *registry.Registry {
	if c == nil {
		return reg
	}

	disabled := make(map[string]bool, len(c.Disabled))
	for _, name := range c.Disabled {
		disabled[name] = true
	}

	var skills []registry.Skill
	for _, sk := range reg.All() {
		if disabled[sk.Name] {
			continue
		}
		if p, ok := c.Priorities[sk.Name]; ok {
			sk.Priority = p
		}
		skills = append(skills, sk)
	}
	return registry.New(skills)
}

// EffectiveRegistry loads the config at path and applies it to the bundled
// skill table. A missing config file is not an error: the bundled table is
// returned as-is. A malformed file is an error so typos don't silently
// disable nothing.
func EffectiveRegistry(path string) (*registry.Registry, error) {
	cfg, err := LoadProjectConfig(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return registry.Bundled(), nil
		}
		return nil, err
	}
	return cfg.Apply(registry.Bundled()), nil
}
