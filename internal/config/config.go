// Package config loads the weft configuration: safety and sampling knobs,
// the backup directory, and user-supplied dialect tables layered over the
// builtins.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/codeweft/weft/pkg/splice/dialect"
)

// Config is the weft configuration.
type Config struct {
	// Insertion settings
	Insertion InsertionConfig `json:"insertion" yaml:"insertion"`

	// Backup settings
	Backup BackupConfig `json:"backup" yaml:"backup"`

	// Custom dialect tables, keyed by name; these overlay the builtins.
	Dialects map[string]*dialect.Dialect `json:"dialects" yaml:"dialects"`
}

// InsertionConfig tunes the engine's behavior per invocation.
type InsertionConfig struct {
	// Whether large files are sampled head/tail before a full scan.
	DisableSampling bool `json:"disable_sampling" yaml:"disable_sampling"`

	// Run the syntax validator over the result of each insert.
	ValidateAfterInsert bool `json:"validate_after_insert" yaml:"validate_after_insert"`

	// Preserve the fragment's own indentation instead of re-basing it.
	PreserveIndentation bool `json:"preserve_indentation" yaml:"preserve_indentation"`
}

// BackupConfig controls on-disk snapshots around insertions.
type BackupConfig struct {
	// Enabled creates a snapshot before every non-dry-run insert.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Dir holds the snapshot files.
	Dir string `json:"dir" yaml:"dir"`

	// Keep is how many snapshots to retain per file when pruning.
	Keep int `json:"keep" yaml:"keep"`
}

// DefaultConfig returns the defaults used when no config file is found.
func DefaultConfig() *Config {
	return &Config{
		Insertion: InsertionConfig{},
		Backup: BackupConfig{
			Enabled: true,
			Dir:     ".weft-backups",
			Keep:    5,
		},
		Dialects: map[string]*dialect.Dialect{},
	}
}

// Load reads configuration from a file, falling back to defaults when no
// file exists. YAML and JSON are both accepted, chosen by extension.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath == "" {
		configPath = findConfigFile()
	}
	if configPath == "" {
		return cfg, nil
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if strings.HasSuffix(configPath, ".json") {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}
	return cfg, nil
}

// Save writes the configuration, format chosen by extension.
func Save(cfg *Config, configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var data []byte
	var err error
	if strings.HasSuffix(configPath, ".json") {
		data, err = json.MarshalIndent(cfg, "", "  ")
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DialectFor resolves a dialect by name through the user overlays first,
// then the builtins, then Generic.
func (c *Config) DialectFor(name string) *dialect.Dialect {
	if d, ok := c.Dialects[name]; ok {
		return d
	}
	if d, ok := dialect.Builtins()[name]; ok {
		return d
	}
	return dialect.Generic()
}

// findConfigFile looks for config files in the working directory, then the
// home directory.
func findConfigFile() string {
	names := []string{".weft.yaml", ".weft.yml", ".weft.json"}

	for _, name := range names {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	for _, name := range names {
		candidate := filepath.Join(homeDir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}
