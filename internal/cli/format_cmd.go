package cli

import (
	"fmt"

	"github.com/hitsz-openauto/coursegen/internal/cli/formatter"
	"github.com/hitsz-openauto/coursegen/internal/format"
	"github.com/spf13/cobra"
)

func newFormatCmd(app *App) *cobra.Command {
	var docsDir string

	cmd := &cobra.Command{
		Use:   "format",
		Short: "Normalize existing .mdx documents in place",
		RunE: func(cmd *cobra.Command, args []string) error {
			docsDir = envOr(docsDir, "COURSEGEN_DOCS", "docs")

			formatted, err := format.FormatAll(docsDir)
			if err != nil {
				return fmt.Errorf("formatting %s: %w", docsDir, err)
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatFormatRun(docsDir, formatted, app.IsInteractive()))
			return nil
		},
	}

	cmd.Flags().StringVar(&docsDir, "docs-dir", "", "Directory of .mdx documents to normalize (env COURSEGEN_DOCS)")

	return cmd
}
