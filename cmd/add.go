package cmd

import (
	"fmt"
	"io"

	"github.com/beekhof/file-stack/pkg/files"
	"github.com/beekhof/file-stack/pkg/session"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add FILE...",
	Short: "Add files to the stack",
	Long: `Add one or more files to the session's stack. File names are relative to the
configured root directory; with --encoded they are URL path-encoded (as in the
links served by 'stack serve') and decoded once. A file that is already on the
stack moves to the front; when the stack is full the oldest file is removed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var addEncoded bool

func init() {
	addCmd.Flags().BoolVar(&addEncoded, "encoded", false, "File names are URL path-encoded")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	if err := addFiles(cmd.OutOrStdout(), store, newResolver(cfg), GetSession(), args, addEncoded); err != nil {
		return err
	}

	if err := store.Save(); err != nil {
		return err
	}
	logger.Debug("saved stack", "session", GetSession())
	return nil
}

// addFiles resolves and adds each name, stopping at the first that cannot be resolved
func addFiles(out io.Writer, store *session.Store, resolver *files.Resolver, sessionID string, names []string, encoded bool) error {
	resolve := resolver.Resolve
	if encoded {
		resolve = resolver.ResolveEncoded
	}

	for _, name := range names {
		file, err := resolve(name)
		if err != nil {
			return fmt.Errorf("failed to add %s: %w", name, err)
		}

		result, err := store.Add(sessionID, file.Ref)
		if err != nil {
			return fmt.Errorf("failed to add %s: %w", name, err)
		}

		fmt.Fprintf(out, "Added %s (%s)\n", file.Ref, file.Type)
		if result.Evicted != nil {
			fmt.Fprintf(out, "Removed %s\n", result.Evicted)
		}
	}
	return nil
}
