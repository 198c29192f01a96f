package plan

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hitsz-openauto/coursegen/internal/domain"
	"gopkg.in/yaml.v3"
)

// Store holds every loaded curriculum plan in memory. All queries after Load
// are pure in-memory lookups; no file is re-read.
type Store struct {
	plans  []domain.Plan
	grades gradesSummary
}

// Load reads every plan file under <dataDir>/plans and returns a fully
// populated store. Grade details from grades_summary.json and repo IDs from
// lookup.yaml are resolved here, once, so generation never goes back to the
// data directory.
//
// Any parse failure or unknown semester label fails the whole load.
func Load(dataDir string) (*Store, error) {
	plansDir := filepath.Join(dataDir, "plans")
	if _, err := os.Stat(plansDir); err != nil {
		return nil, &MissingDirError{Path: plansDir}
	}

	grades := loadGradesSummary(dataDir)
	lookup := loadLookupTable(dataDir)

	var plans []domain.Plan
	err := filepath.WalkDir(plansDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isPlanFile(path) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var pf planFile
		if err := yaml.Unmarshal(data, &pf); err != nil {
			return &ParseError{File: path, Err: err}
		}

		p, err := buildPlan(&pf, grades, lookup)
		if err != nil {
			return err
		}
		plans = append(plans, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(plans, func(i, j int) bool {
		if plans[i].Year != plans[j].Year {
			return plans[i].Year < plans[j].Year
		}
		return plans[i].MajorCode < plans[j].MajorCode
	})

	return &Store{plans: plans, grades: grades}, nil
}

func isPlanFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// buildPlan converts one parsed plan file into its domain form, validating
// every semester label against the fixed table.
func buildPlan(pf *planFile, grades gradesSummary, lookup lookupTable) (domain.Plan, error) {
	courses := make([]domain.Course, 0, len(pf.Courses))
	for _, c := range pf.Courses {
		for _, label := range domain.SplitSemesterField(c.RecommendedYearSemester) {
			if _, ok := domain.SemesterByLabel(label); !ok {
				return domain.Plan{}, &UnknownSemesterError{
					MajorCode: pf.Info.MajorCode,
					Course:    c.CourseCode,
					Label:     label,
				}
			}
		}

		details := c.GradeDetails
		if details == nil {
			details = selectGradeDetails(grades, c.CourseCode, pf.Info.Year, pf.Info.MajorCode, pf.Info.MajorName)
		}

		courses = append(courses, domain.Course{
			RepoID:              resolveRepoID(lookup, c.CourseCode, pf.Info.PlanID),
			Name:                c.CourseName,
			Credit:              c.Credit,
			AssessmentMethod:    c.AssessmentMethod,
			CourseNature:        c.CourseNature,
			RecommendedSemester: c.RecommendedYearSemester,
			Hours:               c.Hours,
			GradeDetails:        details,
		})
	}

	return domain.Plan{
		Year:      pf.Info.Year,
		MajorCode: pf.Info.MajorCode,
		MajorName: pf.Info.MajorName,
		Courses:   courses,
	}, nil
}

// DefaultGradeDetails returns the global-default grade details recorded for
// a repo ID, if any. Shared-category pages are not tied to a plan, so only
// the "default" variant applies to them.
func (s *Store) DefaultGradeDetails(repoID string) []domain.GradeDetail {
	return s.grades[repoID]["default"]
}

// Plans returns all loaded plans sorted by (year, major code).
func (s *Store) Plans() []domain.Plan { return s.plans }

// CoursesFor answers "courses for semester folder of program in year" from
// memory. Courses with a multi-valued semester field appear under each of
// their resolved folders.
func (s *Store) CoursesFor(year, majorCode, semesterFolder string) []domain.Course {
	var out []domain.Course
	for _, p := range s.plans {
		if p.Year != year || p.MajorCode != majorCode {
			continue
		}
		for _, c := range p.Courses {
			for _, label := range domain.SplitSemesterField(c.RecommendedSemester) {
				if sem, ok := domain.SemesterByLabel(label); ok && sem.Folder == semesterFolder {
					out = append(out, c)
					break
				}
			}
		}
	}
	return out
}
