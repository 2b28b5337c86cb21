package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	// Create a temporary file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	// Write test config
	testConfig := &Config{
		RootDir:         "/srv/files",
		MaxItems:        3,
		AcceptFileTypes: []string{"jpg", "pdf"},
		UploadNamespace: "theme",
	}

	if err := SaveConfig(testConfig, configPath); err != nil {
		t.Fatalf("Failed to save test config: %v", err)
	}

	// Load and verify
	loaded, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loaded.RootDir != testConfig.RootDir {
		t.Errorf("Expected RootDir %s, got %s", testConfig.RootDir, loaded.RootDir)
	}
	if loaded.MaxItems != 3 {
		t.Errorf("Expected MaxItems 3, got %d", loaded.MaxItems)
	}
	if loaded.UploadNamespace != "theme" {
		t.Errorf("Expected UploadNamespace theme, got %s", loaded.UploadNamespace)
	}
	if len(loaded.AcceptFileTypes) != 2 {
		t.Errorf("Expected 2 accepted file types, got %d", len(loaded.AcceptFileTypes))
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("root_dir: /srv/files\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	loaded, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loaded.MaxItems != 7 {
		t.Errorf("Expected MaxItems 7 (default), got %d", loaded.MaxItems)
	}
	if loaded.ListenAddr != DefaultListenAddr {
		t.Errorf("Expected ListenAddr %s (default), got %s", DefaultListenAddr, loaded.ListenAddr)
	}
	if loaded.UploadNamespace != "files" {
		t.Errorf("Expected UploadNamespace 'files' (default), got '%s'", loaded.UploadNamespace)
	}
	if loaded.LogLevel != "info" {
		t.Errorf("Expected LogLevel 'info' (default), got '%s'", loaded.LogLevel)
	}
	if loaded.AcceptFileTypes != nil {
		t.Errorf("Expected no accepted file types, got %v", loaded.AcceptFileTypes)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(tmpDir, "missing.yaml")); err == nil {
			t.Error("Expected error for missing config file")
		}
	})

	t.Run("missing root_dir", func(t *testing.T) {
		configPath := filepath.Join(tmpDir, "noroot.yaml")
		if err := os.WriteFile(configPath, []byte("max_items: 4\n"), 0644); err != nil {
			t.Fatalf("Failed to write config: %v", err)
		}
		if _, err := LoadConfig(configPath); err == nil {
			t.Error("Expected error when root_dir is missing")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		configPath := filepath.Join(tmpDir, "bad.yaml")
		if err := os.WriteFile(configPath, []byte("root_dir: [unterminated\n"), 0644); err != nil {
			t.Fatalf("Failed to write config: %v", err)
		}
		if _, err := LoadConfig(configPath); err == nil {
			t.Error("Expected error for invalid yaml")
		}
	})
}

func TestGetConfigPath(t *testing.T) {
	// Test with empty configDir (should use default)
	path := GetConfigPath("")
	if path == "" {
		t.Fatal("GetConfigPath returned empty string")
	}
	// Should end with config.yaml
	if filepath.Base(path) != "config.yaml" {
		t.Errorf("Expected config path to end with config.yaml, got %s", path)
	}

	// Test with custom configDir
	customPath := GetConfigPath("/custom/path")
	expected := filepath.Join("/custom/path", "config.yaml")
	if customPath != expected {
		t.Errorf("Expected config path %s, got %s", expected, customPath)
	}
}
