package cmd

import (
	"testing"
)

func TestRootCommand(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("rootCmd is nil")
	}

	if rootCmd.Use != "stack" {
		t.Errorf("Expected root command use to be 'stack', got '%s'", rootCmd.Use)
	}
}

func TestRootSubcommands(t *testing.T) {
	want := []string{"init", "add", "list", "pick", "serve", "utils"}
	for _, name := range want {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Expected subcommand '%s' to be registered", name)
		}
	}
}
