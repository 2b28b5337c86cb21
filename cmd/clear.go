package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearAll bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the stack",
	Long: `Forget the recent files of the current session (--session), or of every
session with --all.`,
	Args: cobra.NoArgs,
	RunE: runClear,
}

func runClear(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	if clearAll {
		store.Clear()
	} else {
		store.Forget(GetSession())
	}

	if err := store.Save(); err != nil {
		return err
	}

	if clearAll {
		fmt.Fprintln(cmd.OutOrStdout(), "All stacks cleared.")
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Stack for session %s cleared.\n", GetSession())
	}
	return nil
}

func init() {
	clearCmd.Flags().BoolVar(&clearAll, "all", false, "Clear every session's stack")
	utilsCmd.AddCommand(clearCmd)
}
