package plan

import "github.com/hitsz-openauto/coursegen/internal/domain"

// planFile is the on-disk YAML structure of one curriculum plan.
type planFile struct {
	Info    planInfo     `yaml:"info"`
	Courses []planCourse `yaml:"courses"`
}

type planInfo struct {
	Year      string `yaml:"year"`
	MajorCode string `yaml:"major_code"`
	MajorName string `yaml:"major_name"`
	PlanID    string `yaml:"plan_ID"`
}

type planCourse struct {
	CourseCode              string                   `yaml:"course_code"`
	CourseName              string                   `yaml:"course_name"`
	Credit                  *float64                 `yaml:"credit"`
	AssessmentMethod        string                   `yaml:"assessment_method"`
	CourseNature            string                   `yaml:"course_nature"`
	RecommendedYearSemester string                   `yaml:"recommended_year_semester"`
	Hours                   *domain.HourDistribution `yaml:"hours"`
	GradeDetails            []domain.GradeDetail     `yaml:"grade_details"`
}

// categoriesFile is the on-disk YAML structure of shared_categories.yaml.
type categoriesFile struct {
	Categories []struct {
		ID      string   `yaml:"id"`
		Title   string   `yaml:"title"`
		RepoIDs []string `yaml:"repo_ids"`
	} `yaml:"categories"`
	NoCourseInfoRepoIDs []string `yaml:"no_course_info_repo_ids"`
}
