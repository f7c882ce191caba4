package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/aichronos/internal/dataset"
)

// NewListCmd creates the list command, which prints the filtered models
// without starting the timeline.
func NewListCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the filtered models",
		Long:  "Prints the models that match the filter flags, newest first unless --ascending is set.",
		Example: `  # Table of every model
  aichronos list

  # Anthropic models as YAML, in Chinese
  aichronos list --company Anthropic --lang zh --output yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := dataset.ParseOutputFormat(output)
			if err != nil {
				return err
			}
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			models := s.models()
			logger.Debug().Int("models", len(models)).Str("format", string(format)).Msg("listing models")
			return dataset.RenderModels(cmd.OutOrStdout(), models, format)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", string(dataset.OutputTable), "output format (table, json, yaml)")
	return cmd
}
