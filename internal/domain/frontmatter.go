package domain

import "gopkg.in/yaml.v3"

// Frontmatter is the structured header block of a generated course page.
type Frontmatter struct {
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Course      CourseMeta `yaml:"course"`
}

// CourseMeta mirrors the course's curriculum fields in the page header.
type CourseMeta struct {
	Credit           int          `yaml:"credit"`
	AssessmentMethod string       `yaml:"assessmentMethod"`
	CourseNature     string       `yaml:"courseNature"`
	HourDistribution HourMeta     `yaml:"hourDistribution"`
	GradingScheme    []GradeShare `yaml:"gradingScheme"`
}

// HourMeta is the hour breakdown with absent values normalized to zero.
type HourMeta struct {
	Theory   int `yaml:"theory"`
	Lab      int `yaml:"lab"`
	Practice int `yaml:"practice"`
	Exercise int `yaml:"exercise"`
	Computer int `yaml:"computer"`
	Tutoring int `yaml:"tutoring"`
}

// GradeShare is one grading-scheme component with its percentage parsed to
// an integer.
type GradeShare struct {
	Name    string `yaml:"name"`
	Percent int    `yaml:"percent"`
}

// Encode serializes the frontmatter between --- fences. yaml.v3 quotes any
// value that would otherwise break parsing (colons, quotes, leading symbols),
// which downstream tooling relies on.
func (f *Frontmatter) Encode() (string, error) {
	out, err := yaml.Marshal(f)
	if err != nil {
		return "", err
	}
	return "---\n" + string(out) + "---", nil
}
