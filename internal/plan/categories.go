package plan

import (
	"os"
	"path/filepath"

	"github.com/hitsz-openauto/coursegen/internal/domain"
	"gopkg.in/yaml.v3"
)

// CategoriesConfig lists shared course categories and the repo IDs whose
// pages are rendered without the course-info block.
type CategoriesConfig struct {
	Categories       []domain.SharedCategory
	NoCourseInfoRepo map[string]struct{}
}

// LoadCategories reads shared_categories.yaml when present. The file is
// optional; absence means no shared categories.
func LoadCategories(dataDir string) CategoriesConfig {
	cfg := CategoriesConfig{NoCourseInfoRepo: map[string]struct{}{}}

	data, err := os.ReadFile(filepath.Join(dataDir, "shared_categories.yaml"))
	if err != nil {
		return cfg
	}
	var cf categoriesFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return cfg
	}

	for _, c := range cf.Categories {
		cfg.Categories = append(cfg.Categories, domain.SharedCategory{
			ID:      c.ID,
			Title:   c.Title,
			RepoIDs: c.RepoIDs,
		})
	}
	for _, id := range cf.NoCourseInfoRepoIDs {
		cfg.NoCourseInfoRepo[id] = struct{}{}
	}
	return cfg
}
