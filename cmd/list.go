package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/beekhof/file-stack/pkg/stack"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var listCount int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the files on the stack",
	Long: `List the session's recent files, most recent first. --count limits how many
are shown; it does not change how many the stack keeps.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().IntVarP(&listCount, "count", "n", -1, "Number of files to show (default: all)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	refs := store.List(GetSession(), listCount)
	printStack(cmd.OutOrStdout(), refs, terminalWidth())
	return nil
}

// terminalWidth returns the stdout width, or 0 when stdout is not a terminal
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}

// printStack prints refs one per line. Paths longer than width are shortened
// from the left so the file name stays visible; width 0 disables shortening.
func printStack(out io.Writer, refs []stack.FileReference, width int) {
	if len(refs) == 0 {
		fmt.Fprintln(out, "The stack is empty.")
		return
	}

	for i, ref := range refs {
		prefix := fmt.Sprintf("%2d. ", i+1)
		p := ref.Path()
		if width > 0 {
			room := width - len(prefix)
			if room > 3 && len(p) > room {
				p = "..." + p[len(p)-(room-3):]
			}
		}
		fmt.Fprintf(out, "%s%s\n", prefix, p)
	}
}
