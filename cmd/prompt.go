package cmd

import (
	"fmt"

	"github.com/grovetools/core/cli"
	"github.com/grovetools/readmegen/pkg/generator"
	"github.com/spf13/cobra"
)

func newPromptCmd() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the prompt that would be sent to the provider",
		Long: `Builds the system and user prompt exactly as a generation would, without contacting a provider.
No credentials are required.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := getLogger(cmd)
			project, err := loadProject(opts.dir, cli.GetOptions(cmd).ConfigFile, logger)
			if err != nil {
				return err
			}
			settings := mergeSettings(opts, project, cmd.Flags().Changed("license"), cmd.Flags().Changed("no-scan"))
			if err := settings.request.Validate(); err != nil {
				return err
			}

			p := generator.BuildPrompt(settings.request, logger)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "--- system ---")
			fmt.Fprintln(out, p.System)
			fmt.Fprintln(out, "--- user ---")
			fmt.Fprintln(out, p.User)
			return nil
		},
	}

	opts.bindFlags(cmd)
	// Provider flags are accepted for symmetry with generate but have no effect here.
	cmd.Flags().MarkHidden("provider")
	cmd.Flags().MarkHidden("model")

	return cmd
}
