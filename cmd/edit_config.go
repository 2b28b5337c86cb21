package cmd

import (
	"fmt"

	"github.com/beekhof/file-stack/pkg/config"
	"github.com/beekhof/file-stack/pkg/editor"

	"github.com/spf13/cobra"
)

var editConfigCmd = &cobra.Command{
	Use:   "edit-config",
	Short: "Open the config file in $EDITOR",
	Long: `Open config.yaml in the editor named by $EDITOR (or the first of vim, nano and
vi found on PATH) and check that the result still loads.`,
	Args: cobra.NoArgs,
	RunE: runEditConfig,
}

func runEditConfig(cmd *cobra.Command, args []string) error {
	configPath := config.GetConfigPath(GetConfigDir())

	if err := editor.EditFile(configPath); err != nil {
		return err
	}

	if _, err := config.LoadConfig(configPath); err != nil {
		return fmt.Errorf("config is no longer valid: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Configuration updated.")
	return nil
}

func init() {
	utilsCmd.AddCommand(editConfigCmd)
}
