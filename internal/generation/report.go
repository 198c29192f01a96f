package generation

import "github.com/google/uuid"

// Report summarizes one generation run. Skips are recoverable by design and
// never affect the run's outcome; they are surfaced here for the summary.
type Report struct {
	RunID          string
	CoursePages    int
	IndexPages     int
	MetaFiles      int
	SkippedCourses []string
	FilesFormatted int // filled in by the format phase
}

func newReport() *Report {
	return &Report{RunID: uuid.NewString()}
}

// Pages returns the total number of documents written.
func (r *Report) Pages() int { return r.CoursePages + r.IndexPages }
