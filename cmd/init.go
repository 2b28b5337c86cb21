package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/beekhof/file-stack/pkg/config"
	"github.com/beekhof/file-stack/pkg/stack"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the stack configuration",
	Long: `Initialize stack by prompting for the files root directory, the number of
recent files kept per session, the HTTP listen address and the accepted file
types. Press enter to keep the value shown in brackets.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	// Only echo prompts when a person is typing
	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	cfg, err := promptConfig(os.Stdin, cmd.OutOrStdout(), interactive)
	if err != nil {
		return err
	}

	configPath := config.GetConfigPath(GetConfigDir())
	if err := config.SaveConfig(cfg, configPath); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to %s\n", configPath)
	return nil
}

// promptConfig reads the init answers, one per line, from in
func promptConfig(in io.Reader, out io.Writer, interactive bool) (*config.Config, error) {
	reader := bufio.NewReader(in)
	ask := func(label, def string) (string, error) {
		if interactive {
			fmt.Fprintf(out, "%s [%s]: ", label, def)
		}
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return def, nil
		}
		return line, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	// Prompt for root directory
	rootDir, err := ask("Files root directory", cwd)
	if err != nil {
		return nil, err
	}
	rootDir, err = filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root directory: %w", err)
	}
	info, err := os.Stat(rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to stat root directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", rootDir)
	}

	// Prompt for stack size
	maxItemsStr, err := ask("Recent files per session", strconv.Itoa(stack.DefaultMaxItems))
	if err != nil {
		return nil, err
	}
	maxItems, err := strconv.Atoi(maxItemsStr)
	if err != nil || maxItems <= 0 {
		return nil, fmt.Errorf("recent files per session must be a positive number, got %q", maxItemsStr)
	}

	// Prompt for listen address
	listenAddr, err := ask("HTTP listen address", config.DefaultListenAddr)
	if err != nil {
		return nil, err
	}

	// Prompt for accepted file types
	acceptStr, err := ask("Accepted file types, comma separated (empty for all)", "")
	if err != nil {
		return nil, err
	}

	return &config.Config{
		RootDir:         rootDir,
		MaxItems:        maxItems,
		ListenAddr:      listenAddr,
		AcceptFileTypes: splitList(acceptStr),
		LogLevel:        config.DefaultLogLevel,
		UploadNamespace: config.DefaultUploadNamespace,
	}, nil
}

// splitList splits a comma separated list, dropping blanks and leading dots
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimPrefix(strings.TrimSpace(part), ".")
		if part != "" {
			out = append(out, strings.ToLower(part))
		}
	}
	return out
}
