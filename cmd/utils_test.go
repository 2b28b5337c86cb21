package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			var out bytes.Buffer
			completionCmd.SetOut(&out)
			defer completionCmd.SetOut(nil)

			if err := completionCmd.RunE(completionCmd, []string{shell}); err != nil {
				t.Fatalf("Failed to generate %s completion: %v", shell, err)
			}
			if !strings.Contains(out.String(), "stack") {
				t.Errorf("Expected %s completion script to mention 'stack'", shell)
			}
		})
	}
}

func TestUtilsSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range utilsCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"completion", "clear", "edit-config"} {
		if !names[want] {
			t.Errorf("Expected utils subcommand '%s'", want)
		}
	}
}
