package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var utilsCmd = &cobra.Command{
	Use:   "utils",
	Short: "Utility commands",
	Long:  `Utility commands for configuration, shell completion and state maintenance.`,
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate completion script",
	Long: `Generate the autocompletion script for the specified shell.

To load completions in your current shell session:
  bash:       source <(stack utils completion bash)
  zsh:        source <(stack utils completion zsh)
  fish:       stack utils completion fish | source
  powershell: stack utils completion powershell | Out-String | Invoke-Expression

To load them for every new session, write the script to your shell's
completion directory or source it from your shell profile.`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(out)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(out)
		}
		return fmt.Errorf("unsupported shell: %s", args[0])
	},
}

func init() {
	rootCmd.AddCommand(utilsCmd)

	// Register completion command under utils instead of root
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	utilsCmd.AddCommand(completionCmd)
}
