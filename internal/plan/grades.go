package plan

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hitsz-openauto/coursegen/internal/domain"
)

// gradesSummary maps course code -> variant key -> grade details.
// Variant keys are "{year}_{majorCode}", "{year}_{majorName}",
// "{year}_default" and "default".
type gradesSummary map[string]map[string][]domain.GradeDetail

// loadGradesSummary reads grades_summary.json when present. The file is an
// optional enrichment; a missing or unparseable file yields an empty summary.
func loadGradesSummary(dataDir string) gradesSummary {
	data, err := os.ReadFile(filepath.Join(dataDir, "grades_summary.json"))
	if err != nil {
		return gradesSummary{}
	}
	var gs gradesSummary
	if err := json.Unmarshal(data, &gs); err != nil {
		return gradesSummary{}
	}
	return gs
}

// selectGradeDetails picks grade details for a course by the most specific
// matching variant. Empty detail lists never match; lookup falls through to
// the next level.
func selectGradeDetails(gs gradesSummary, courseCode, year, majorCode, majorName string) []domain.GradeDetail {
	entry, ok := gs[courseCode]
	if !ok {
		return nil
	}

	keys := []string{
		fmt.Sprintf("%s_%s", year, majorCode),
		fmt.Sprintf("%s_%s", year, majorName),
		fmt.Sprintf("%s_default", year),
		"default",
	}
	for _, key := range keys {
		if details := entry[key]; len(details) > 0 {
			return details
		}
	}
	return nil
}
