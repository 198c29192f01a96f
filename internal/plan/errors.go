package plan

import "fmt"

// MissingDirError reports a required input directory that does not exist.
// It is always fatal: without complete input no output may be produced.
type MissingDirError struct {
	Path string
}

func (e *MissingDirError) Error() string {
	return fmt.Sprintf("missing required directory: %s", e.Path)
}

// ParseError reports a plan source file that failed to parse. One bad file
// fails the whole load; partial curriculum data would silently produce an
// incomplete catalog.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing plan file %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// UnknownSemesterError reports a recommended-semester label that is absent
// from the fixed semester table.
type UnknownSemesterError struct {
	MajorCode string
	Course    string
	Label     string
}

func (e *UnknownSemesterError) Error() string {
	return fmt.Sprintf("plan %s: course %s: unknown semester label %q", e.MajorCode, e.Course, e.Label)
}
