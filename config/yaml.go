package config

import (
	"os"

	"github.com/goccy/go-yaml"
	legacyyaml "gopkg.in/yaml.v3"

	errorutil "github.com/projectdiscovery/utils/errors"
)

// ParseBytes parses and validates a Config from a raw YAML document using
// goccy/go-yaml. Load is ParseBytes over a file; llmauthor.ParseResponse
// uses it directly over a model's in-memory response.
func ParseBytes(bin []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, errorutil.NewWithTag("config-invalid", "failed to parse yaml: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads and validates a Config from a YAML document using goccy/go-yaml,
// the module's primary config codec.
func Load(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errorutil.NewWithTag("config", "failed to read %v: %v", filePath, err)
	}
	cfg, err := ParseBytes(bin)
	if err != nil {
		return nil, errorutil.NewWithTag("config-invalid", "failed to parse %v: %v", filePath, err)
	}
	return cfg, nil
}

// LoadLegacy reads a Config using gopkg.in/yaml.v3, for documents produced
// by older tooling that predates the goccy/go-yaml migration.
func LoadLegacy(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errorutil.NewWithTag("config", "failed to read %v: %v", filePath, err)
	}
	var cfg Config
	if err := legacyyaml.Unmarshal(bin, &cfg); err != nil {
		return nil, errorutil.NewWithTag("config-invalid", "failed to parse %v: %v", filePath, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save marshals and writes a Config as YAML via goccy/go-yaml.
func Save(cfg *Config, filePath string) error {
	bin, err := yaml.Marshal(cfg)
	if err != nil {
		return errorutil.NewWithTag("config", "failed to marshal config: %v", err)
	}
	return os.WriteFile(filePath, bin, 0644)
}
