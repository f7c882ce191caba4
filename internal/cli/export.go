package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/aichronos/internal/dataset"
	"github.com/rshade/aichronos/internal/export"
)

// NewExportCmd creates the export command, which renders the filtered
// timeline to PNG and text files.
func NewExportCmd() *cobra.Command {
	var outputs []string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the timeline to image or text files",
		Long: `Renders the filtered timeline at the initial zoom level. The format of each
output follows its extension: .png for an image, .txt for plain text.`,
		Example: `  # Image and text side by side
  aichronos export -o timeline.png -o timeline.txt

  # 2023 releases in the light theme
  aichronos export --year 2023 --theme light -o 2023.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			scene := export.SceneFor(
				dataset.TimelineItems(s.models()),
				s.cfg.Layout(),
				s.cfg.Bounds(),
				s.order == dataset.Newest,
			)
			if err := export.Write(cmd.Context(), outputs, scene, s.cfg.Theme()); err != nil {
				return err
			}
			for _, out := range outputs {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %s\n", out)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&outputs, "output", "o", nil, "output file, repeatable (.png or .txt)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
