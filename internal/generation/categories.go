package generation

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hitsz-openauto/coursegen/internal/domain"
)

// writeSharedCategories emits the cross-program category subtrees under one
// program directory. It returns the IDs of categories that produced at
// least one course page; empty categories leave no trace.
func (g *Generator) writeSharedCategories(p *domain.Plan, majorDir string, report *Report) ([]string, error) {
	var categoryIDs []string

	for _, cat := range g.Shared.Categories {
		catDir := filepath.Join(majorDir, cat.ID)
		var cards []card

		for _, repoID := range cat.RepoIDs {
			if !g.Filter.Include(repoID) {
				continue
			}

			mdxPath := filepath.Join(g.ReposDir, repoID+".mdx")
			raw, err := os.ReadFile(mdxPath)
			if os.IsNotExist(err) {
				continue
			}
			if err != nil {
				return nil, err
			}

			title := docTitle(string(raw), repoID)
			content := stripTitleBlock(string(raw))

			treeSection, err := g.fileTreeSection(repoID)
			if err != nil {
				return nil, err
			}

			course := domain.Course{
				RepoID:       repoID,
				Name:         title,
				GradeDetails: g.Store.DefaultGradeDetails(repoID),
			}
			fm, err := buildFrontmatter(title, &course)
			if err != nil {
				return nil, err
			}

			var page string
			if _, noInfo := g.Shared.NoCourseInfoRepo[repoID]; noInfo {
				page = fmt.Sprintf("%s\n\n%s%s", fm, content, treeSection)
			} else {
				page = fmt.Sprintf("%s\n\n<CourseInfo />\n\n%s%s", fm, content, treeSection)
			}

			if err := os.MkdirAll(catDir, 0755); err != nil {
				return nil, err
			}
			if err := os.WriteFile(filepath.Join(catDir, repoID+".mdx"), []byte(page), 0644); err != nil {
				return nil, err
			}
			report.CoursePages++

			cards = append(cards, card{
				Title: title,
				Href:  fmt.Sprintf("/docs/%s/%s/%s/%s", p.Year, p.MajorCode, cat.ID, repoID),
			})
		}

		if len(cards) == 0 {
			continue
		}

		page, err := indexPage(cat.Title, cards)
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(filepath.Join(catDir, "index.mdx"), []byte(page), 0644); err != nil {
			return nil, err
		}
		report.IndexPages++
		categoryIDs = append(categoryIDs, cat.ID)
	}

	return categoryIDs, nil
}
