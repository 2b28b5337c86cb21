package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/beekhof/file-stack/pkg/stack"
)

const (
	// DefaultListenAddr is used by `stack serve` when listen_addr is unset
	DefaultListenAddr = "127.0.0.1:8089"
	// DefaultLogLevel is used when log_level is unset
	DefaultLogLevel = "info"
	// DefaultUploadNamespace is used when upload_namespace is unset
	DefaultUploadNamespace = "files"
)

// Config holds the application configuration
type Config struct {
	RootDir         string   `yaml:"root_dir"`                    // Directory that file names are resolved against
	MaxItems        int      `yaml:"max_items,omitempty"`         // Capacity of each session's stack (default: 7)
	ListenAddr      string   `yaml:"listen_addr,omitempty"`       // HTTP listen address (default: 127.0.0.1:8089)
	AcceptFileTypes []string `yaml:"accept_file_types,omitempty"` // Extensions allowed on the stack; empty accepts all
	LogLevel        string   `yaml:"log_level,omitempty"`         // debug, info, warn or error (default: info)
	UploadNamespace string   `yaml:"upload_namespace,omitempty"`  // Namespace uploads from the stack panel go to (default: files)
}

// ApplyDefaults fills unset optional fields
func (c *Config) ApplyDefaults() {
	if c.MaxItems <= 0 {
		c.MaxItems = stack.DefaultMaxItems
	}
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.UploadNamespace == "" {
		c.UploadNamespace = DefaultUploadNamespace
	}
}

// GetConfigDir returns configDir, or the default ~/.file-stack when it is empty
func GetConfigDir(configDir string) string {
	if configDir != "" {
		return configDir
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home dir cannot be determined
		return "./.file-stack"
	}
	return filepath.Join(homeDir, ".file-stack")
}

// GetConfigPath returns the path for the config file
// If configDir is empty, uses the default ~/.file-stack
func GetConfigPath(configDir string) string {
	return filepath.Join(GetConfigDir(configDir), "config.yaml")
}

// LoadConfig loads the configuration from the specified path
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.RootDir == "" {
		return nil, fmt.Errorf("root_dir is not set in %s", path)
	}
	cfg.ApplyDefaults()

	return &cfg, nil
}

// SaveConfig saves the configuration to the specified path
func SaveConfig(cfg *Config, path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
