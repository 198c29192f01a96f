package generation

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hitsz-openauto/coursegen/internal/domain"
	"github.com/hitsz-openauto/coursegen/internal/plan"
	"github.com/hitsz-openauto/coursegen/internal/tree"
)

const resourceBrowserBase = "https://open.osa.moe/openauto"

// Generator walks the plan store and writes the documentation page tree:
// per-course pages, semester/program/year index pages and meta.json
// sidecars. Output paths are a pure function of (year, program, semester,
// course), so distinct courses never write to the same file.
type Generator struct {
	Store    *plan.Store
	Filter   *plan.Filter
	Shared   plan.CategoriesConfig
	ReposDir string
	DocsDir  string
}

// Generate runs the whole generation pass. A course whose resource document
// is missing is skipped and counted, never fatal; I/O failures and
// unparseable manifests abort the run.
func (g *Generator) Generate() (*Report, error) {
	if _, err := os.Stat(g.ReposDir); err != nil {
		return nil, &plan.MissingDirError{Path: g.ReposDir}
	}

	report := newReport()

	type major struct{ code, name string }
	years := map[string]bool{}
	majorsByYear := map[string][]major{}

	for _, p := range g.Store.Plans() {
		years[p.Year] = true
		majorsByYear[p.Year] = append(majorsByYear[p.Year], major{p.MajorCode, p.MajorName})

		majorDir := filepath.Join(g.DocsDir, p.Year, p.MajorCode)
		if err := os.MkdirAll(majorDir, 0755); err != nil {
			return nil, err
		}

		coursesBySemester := map[string][]card{}

		for _, c := range p.Courses {
			if !g.Filter.Include(c.RepoID) {
				continue
			}

			page, ok, err := g.coursePage(c.Name, &c, report)
			if err != nil {
				return nil, err
			}
			if !ok {
				report.SkippedCourses = append(report.SkippedCourses, c.RepoID)
				continue
			}

			var targetDirs []string
			for _, folder := range semesterFolders(c.RecommendedSemester) {
				semDir := filepath.Join(majorDir, folder)
				if err := os.MkdirAll(semDir, 0755); err != nil {
					return nil, err
				}
				coursesBySemester[folder] = append(coursesBySemester[folder], card{
					Title: c.Name,
					Href:  fmt.Sprintf("/docs/%s/%s/%s/%s", p.Year, p.MajorCode, folder, c.RepoID),
				})
				targetDirs = append(targetDirs, semDir)
			}
			if len(targetDirs) == 0 {
				targetDirs = append(targetDirs, majorDir)
			}

			for _, dir := range targetDirs {
				if err := os.WriteFile(filepath.Join(dir, c.RepoID+".mdx"), []byte(page), 0644); err != nil {
					return nil, err
				}
				report.CoursePages++
			}
		}

		// Semester pages and navigation stay in the table's semantic order.
		var orderedSemesters []string
		for _, s := range domain.Semesters {
			if _, ok := coursesBySemester[s.Folder]; ok {
				orderedSemesters = append(orderedSemesters, s.Folder)
			}
		}

		for _, folder := range orderedSemesters {
			page, err := indexPage(domain.SemesterTitleByFolder(folder), coursesBySemester[folder])
			if err != nil {
				return nil, err
			}
			if err := os.WriteFile(filepath.Join(majorDir, folder, "index.mdx"), []byte(page), 0644); err != nil {
				return nil, err
			}
			report.IndexPages++
		}

		categoryIDs, err := g.writeSharedCategories(&p, majorDir, report)
		if err != nil {
			return nil, err
		}

		if err := g.writeProgramMeta(&p, majorDir, orderedSemesters, categoryIDs, report); err != nil {
			return nil, err
		}
	}

	// Year sidecars and indexes, in sorted year order.
	yearList := make([]string, 0, len(years))
	for y := range years {
		yearList = append(yearList, y)
	}
	sort.Strings(yearList)

	for _, year := range yearList {
		yearDir := filepath.Join(g.DocsDir, year)
		meta, err := marshalMeta(yearMeta{Title: year})
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(filepath.Join(yearDir, "meta.json"), meta, 0644); err != nil {
			return nil, err
		}
		report.MetaFiles++

		var cards []card
		for _, m := range majorsByYear[year] {
			cards = append(cards, card{
				Title: m.name,
				Href:  fmt.Sprintf("/docs/%s/%s", year, m.code),
			})
		}
		page, err := indexPage("目录", cards)
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(filepath.Join(yearDir, "index.mdx"), []byte(page), 0644); err != nil {
			return nil, err
		}
		report.IndexPages++
	}

	return report, nil
}

// coursePage composes the full page body for a course. The second return is
// false when the course's resource document is absent (recoverable skip).
func (g *Generator) coursePage(title string, c *domain.Course, report *Report) (string, bool, error) {
	mdxPath := filepath.Join(g.ReposDir, c.RepoID+".mdx")

	raw, err := os.ReadFile(mdxPath)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	content := stripTitleBlock(string(raw))

	treeSection, err := g.fileTreeSection(c.RepoID)
	if err != nil {
		return "", false, err
	}

	fm, err := buildFrontmatter(title, c)
	if err != nil {
		return "", false, err
	}

	return fmt.Sprintf("%s\n\n<CourseInfo />\n\n%s%s", fm, content, treeSection), true, nil
}

// fileTreeSection renders the resource-download section from the course's
// manifest, or "" when the course has no manifest.
func (g *Generator) fileTreeSection(repoID string) (string, error) {
	jsonPath := filepath.Join(g.ReposDir, repoID+".json")
	if _, err := os.Stat(jsonPath); err != nil {
		return "", nil
	}

	manifest, err := tree.LoadManifest(jsonPath)
	if err != nil {
		return "", err
	}
	jsx := tree.RenderJSX(tree.Build(manifest, repoID), 1)
	return fmt.Sprintf("\n\n## 资源下载\n\n<Files url=%q>\n%s\n</Files>",
		resourceBrowserBase+"/"+repoID, jsx), nil
}

// stripTitleBlock drops the first two lines of a course document; they
// duplicate the title that the frontmatter already carries.
func stripTitleBlock(content string) string {
	lines := strings.Split(content, "\n")
	if len(lines) <= 2 {
		return ""
	}
	return strings.Join(lines[2:], "\n")
}

// semesterFolders resolves a recommended-semester field into folder keys,
// deduplicated in order. Labels were validated at load time.
func semesterFolders(field string) []string {
	var folders []string
	seen := map[string]bool{}
	for _, label := range domain.SplitSemesterField(field) {
		if sem, ok := domain.SemesterByLabel(label); ok && !seen[sem.Folder] {
			seen[sem.Folder] = true
			folders = append(folders, sem.Folder)
		}
	}
	return folders
}

// writeProgramMeta writes the program's meta.json sidecar and its index
// page with one card per emitted semester and shared category.
func (g *Generator) writeProgramMeta(p *domain.Plan, majorDir string, semesters, categoryIDs []string, report *Report) error {
	pages := append([]string{"..."}, semesters...)
	pages = append(pages, categoryIDs...)

	meta, err := marshalMeta(programMeta{
		Title:       p.MajorName,
		Root:        true,
		DefaultOpen: true,
		Pages:       pages,
	})
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(majorDir, "meta.json"), meta, 0644); err != nil {
		return err
	}
	report.MetaFiles++

	var cards []card
	for _, folder := range semesters {
		cards = append(cards, card{
			Title: domain.SemesterTitleByFolder(folder),
			Href:  fmt.Sprintf("/docs/%s/%s/%s", p.Year, p.MajorCode, folder),
		})
	}
	for _, cat := range g.Shared.Categories {
		for _, id := range categoryIDs {
			if cat.ID == id {
				cards = append(cards, card{
					Title: cat.Title,
					Href:  fmt.Sprintf("/docs/%s/%s/%s", p.Year, p.MajorCode, cat.ID),
				})
			}
		}
	}

	page, err := indexPage("目录", cards)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(majorDir, "index.mdx"), []byte(page), 0644); err != nil {
		return err
	}
	report.IndexPages++
	return nil
}
