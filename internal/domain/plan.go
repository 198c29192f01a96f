package domain

// Plan is one academic program's curriculum for a graduation year.
// Plans are immutable once loaded.
type Plan struct {
	Year      string
	MajorCode string
	MajorName string
	Courses   []Course
}

// Course is a single curriculum entry, already enriched with its resolved
// repository ID and grade details.
type Course struct {
	RepoID              string
	Name                string
	Credit              *float64
	AssessmentMethod    string
	CourseNature        string
	RecommendedSemester string
	Hours               *HourDistribution
	GradeDetails        []GradeDetail
}

// HourDistribution breaks a course's contact hours down by category.
// All fields are optional in source data; absent means zero.
type HourDistribution struct {
	Theory   *int `yaml:"theory" json:"theory"`
	Lab      *int `yaml:"lab" json:"lab"`
	Practice *int `yaml:"practice" json:"practice"`
	Exercise *int `yaml:"exercise" json:"exercise"`
	Computer *int `yaml:"computer" json:"computer"`
	Tutoring *int `yaml:"tutoring" json:"tutoring"`
}

// GradeDetail is one grading-scheme component as found in source data.
// Percent keeps the raw string form ("30%"); parsing happens at page
// generation time.
type GradeDetail struct {
	Name    string  `yaml:"name" json:"name"`
	Percent *string `yaml:"percent" json:"percent"`
}

// SharedCategory groups courses that are not tied to a specific program,
// such as cross-specialty electives.
type SharedCategory struct {
	ID      string
	Title   string
	RepoIDs []string
}
