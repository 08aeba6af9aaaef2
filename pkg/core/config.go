// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds rivelink configuration
type Config struct {
	ModuleDir  string `yaml:"module_dir"`
	ProjectDir string `yaml:"project_dir"`
	Format     string `yaml:"format"`
	LogLevel   string `yaml:"log_level"`
	LogFormat  string `yaml:"log_format"`
	DebugCRT   bool   `yaml:"debug_crt"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		ModuleDir:  getDefaultModuleDir(),
		ProjectDir: ".",
		Format:     "yaml",
		LogLevel:   "warn",
		LogFormat:  "text",
	}
}

// DefaultPath returns $HOME/.config/rivelink/config.yaml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "rivelink", "config.yaml"), nil
}

// LoadConfig loads configuration from file. A missing file yields the
// defaults; fields absent from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

func getDefaultModuleDir() string {
	if dir := os.Getenv("RIVELINK_MODULE_DIR"); dir != "" {
		return dir
	}
	return "."
}
