package cli

import (
	"fmt"
	"path/filepath"

	"github.com/hitsz-openauto/coursegen/internal/cli/formatter"
	"github.com/hitsz-openauto/coursegen/internal/format"
	"github.com/hitsz-openauto/coursegen/internal/generation"
	"github.com/hitsz-openauto/coursegen/internal/plan"
	"github.com/spf13/cobra"
)

func newBuildCmd(app *App) *cobra.Command {
	var dataDir, reposDir, docsDir, filterPath string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Load plans, generate documentation pages and normalize them",
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir = envOr(dataDir, "COURSEGEN_DATA", "data")
			reposDir = envOr(reposDir, "COURSEGEN_REPOS", "repos")
			docsDir = envOr(docsDir, "COURSEGEN_DOCS", "docs")
			if filterPath == "" {
				filterPath = filepath.Join(dataDir, "repos_list.txt")
			}

			store, err := plan.Load(dataDir)
			if err != nil {
				return err
			}

			filter, err := plan.LoadFilter(filterPath)
			if err != nil {
				return fmt.Errorf("reading filter %s: %w", filterPath, err)
			}

			g := &generation.Generator{
				Store:    store,
				Filter:   filter,
				Shared:   plan.LoadCategories(dataDir),
				ReposDir: reposDir,
				DocsDir:  docsDir,
			}
			report, err := g.Generate()
			if err != nil {
				return err
			}

			formatted, err := format.FormatAll(docsDir)
			if err != nil {
				return fmt.Errorf("formatting %s: %w", docsDir, err)
			}
			report.FilesFormatted = formatted

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSummary(report, app.IsInteractive()))
			return nil
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", "", "Directory holding plans/, lookup and grade data (env COURSEGEN_DATA)")
	cmd.Flags().StringVar(&reposDir, "repos-dir", "", "Directory holding per-course .mdx and .json inputs (env COURSEGEN_REPOS)")
	cmd.Flags().StringVar(&docsDir, "docs-dir", "", "Output directory for the generated page tree (env COURSEGEN_DOCS)")
	cmd.Flags().StringVar(&filterPath, "filter", "", "Allow-list file of repo IDs, one per line (default <data-dir>/repos_list.txt)")

	return cmd
}
