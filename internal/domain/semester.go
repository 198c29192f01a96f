package domain

import "strings"

// Semester maps a source-language semester label to its folder key and
// display title.
type Semester struct {
	Label  string
	Folder string
	Title  string
}

// Semesters is the fixed, total mapping for every semester label valid in
// plan data, in semantic order (year, then season). A label absent from this
// table is a load error, never a silent default.
var Semesters = []Semester{
	{"第一学年秋季", "fresh-autumn", "大一·秋"},
	{"第一学年春季", "fresh-spring", "大一·春"},
	{"第一学年夏季", "fresh-summer", "大一·夏"},
	{"第二学年秋季", "sophomore-autumn", "大二·秋"},
	{"第二学年春季", "sophomore-spring", "大二·春"},
	{"第二学年夏季", "sophomore-summer", "大二·夏"},
	{"第三学年秋季", "junior-autumn", "大三·秋"},
	{"第三学年春季", "junior-spring", "大三·春"},
	{"第三学年夏季", "junior-summer", "大三·夏"},
	{"第四学年秋季", "senior-autumn", "大四·秋"},
	{"第四学年春季", "senior-spring", "大四·春"},
	{"第四学年夏季", "senior-summer", "大四·夏"},
	{"第五学年秋季", "fifth-autumn", "大五·秋"},
	{"第五学年春季", "fifth-spring", "大五·春"},
	{"第五学年夏季", "fifth-summer", "大五·夏"},
}

// SemesterByLabel resolves a single semester label. The second return is
// false when the label is not in the table.
func SemesterByLabel(label string) (Semester, bool) {
	for _, s := range Semesters {
		if s.Label == label {
			return s, true
		}
	}
	return Semester{}, false
}

// SemesterTitleByFolder returns the display title for a folder key, or the
// folder itself when unknown (folders come from our own table, so this only
// triggers on hand-edited output trees).
func SemesterTitleByFolder(folder string) string {
	for _, s := range Semesters {
		if s.Folder == folder {
			return s.Title
		}
	}
	return folder
}

// SplitSemesterField splits a possibly multi-valued recommended-semester
// field into trimmed, non-empty labels. Both ASCII and fullwidth separators
// appear in source data.
func SplitSemesterField(field string) []string {
	parts := strings.FieldsFunc(field, func(r rune) bool {
		return r == ',' || r == '，' || r == '、'
	})
	var labels []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			labels = append(labels, p)
		}
	}
	return labels
}
