package cmd

import (
	"github.com/grovetools/readmegen/internal/scaffold"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var dir string
	var opts scaffold.InitOptions

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a readmegen.yml for the project",
		Long: `Creates a readmegen.yml in the project directory holding the project name, description,
license and provider settings, so later runs need no flags.

It will not overwrite an existing file unless --force is given.

Examples:
  readmegen init                                         # Name taken from the directory
  readmegen init -d "Scrapes Amazon prices to CSV"
  readmegen init --provider openai --license Apache-2.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := scaffold.Init(dir, opts, getLogger(cmd))
			return err
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "Project directory")
	cmd.Flags().StringVarP(&opts.Name, "name", "n", "", "Project name (default: directory name)")
	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "Project description")
	cmd.Flags().StringVar(&opts.License, "license", "", "License type (default: MIT)")
	cmd.Flags().StringVar(&opts.Provider, "provider", "", "AI provider: ollama or openai (default: ollama)")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite an existing readmegen.yml")

	return cmd
}
