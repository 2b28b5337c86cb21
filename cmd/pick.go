package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beekhof/file-stack/pkg/files"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Interactively pick files to add to the stack",
	Long: `Show the current stack and prompt for file names to add, with tab completion
over the files under the root directory. Enter an empty line or press Ctrl-D to
finish. Files are saved as they are added.`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	resolver := newResolver(cfg)
	out := cmd.OutOrStdout()

	printStack(out, store.List(GetSession(), -1), terminalWidth())

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "file> ",
		HistoryFile:     "", // No history file
		AutoComplete:    newFileCompleter(resolver),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to start prompt: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			// EOF or interrupt ends the session
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			return nil
		}

		if err := addFiles(out, store, resolver, GetSession(), []string{line}, false); err != nil {
			fmt.Fprintf(out, "%v\n", err)
			continue
		}
		if err := store.Save(); err != nil {
			return err
		}
		logger.Debug("saved stack", "session", GetSession(), "file", line)
	}
}

// newFileCompleter completes file names under the resolver's root. The file
// list is read once per prompt session.
func newFileCompleter(resolver *files.Resolver) readline.AutoCompleter {
	var cached []string
	loaded := false
	return readline.NewPrefixCompleter(
		readline.PcItemDynamic(func(line string) []string {
			if !loaded {
				paths, err := resolver.Walk()
				if err == nil {
					cached = paths
				}
				loaded = true
			}
			return filterPrefix(cached, strings.TrimSpace(line))
		}),
	)
}

// filterPrefix returns the paths starting with prefix
func filterPrefix(paths []string, prefix string) []string {
	var out []string
	for _, p := range paths {
		if strings.HasPrefix(p, prefix) {
			out = append(out, p)
		}
	}
	return out
}
