package generation

import (
	"strconv"
	"strings"

	"github.com/hitsz-openauto/coursegen/internal/domain"
)

// buildFrontmatter composes the YAML header for a course page. Optional
// source values normalize to zero/empty; grading entries keep only positive
// percentages.
func buildFrontmatter(title string, c *domain.Course) (string, error) {
	credit := 0
	if c.Credit != nil {
		credit = int(*c.Credit)
	}

	var hours domain.HourMeta
	if c.Hours != nil {
		hours = domain.HourMeta{
			Theory:   intOrZero(c.Hours.Theory),
			Lab:      intOrZero(c.Hours.Lab),
			Practice: intOrZero(c.Hours.Practice),
			Exercise: intOrZero(c.Hours.Exercise),
			Computer: intOrZero(c.Hours.Computer),
			Tutoring: intOrZero(c.Hours.Tutoring),
		}
	}

	grading := []domain.GradeShare{}
	for _, d := range c.GradeDetails {
		if p := parsePercent(d.Percent); p > 0 {
			grading = append(grading, domain.GradeShare{Name: d.Name, Percent: p})
		}
	}

	fm := &domain.Frontmatter{
		Title: title,
		Course: domain.CourseMeta{
			Credit:           credit,
			AssessmentMethod: c.AssessmentMethod,
			CourseNature:     c.CourseNature,
			HourDistribution: hours,
			GradingScheme:    grading,
		},
	}
	return fm.Encode()
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// parsePercent reads a "NN%" string; malformed or absent values count as 0.
func parsePercent(raw *string) int {
	if raw == nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(*raw), "%"))
	if err != nil {
		return 0
	}
	return n
}
