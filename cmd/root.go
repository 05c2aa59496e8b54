package cmd

import (
	"github.com/grovetools/core/cli"
	"github.com/spf13/cobra"
)

var rootCmd *cobra.Command

func init() {
	rootCmd = newGenerateCmd()

	// Add commands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newPromptCmd())
	rootCmd.AddCommand(newSchemaCmd())
	rootCmd.AddCommand(newWatchCmd())
}

func Execute() error {
	return cli.Execute(rootCmd)
}
