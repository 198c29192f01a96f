package plan

import (
	"os"
	"strings"
)

// Filter is an allow-list of course repo IDs. A nil *Filter means "no
// filtering": every course is included. A non-nil Filter with no entries is
// an explicit empty set and excludes everything. The two cases are distinct
// on purpose.
type Filter struct {
	codes map[string]struct{}
}

// LoadFilter reads an allow-list file, one repo ID per line. A missing file
// is not an error; it means no filter was configured.
func LoadFilter(path string) (*Filter, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	f := &Filter{codes: map[string]struct{}{}}
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			f.codes[line] = struct{}{}
		}
	}
	return f, nil
}

// NewFilter builds a filter from an explicit code list. Used by tests and by
// callers that source the allow-list elsewhere.
func NewFilter(codes ...string) *Filter {
	f := &Filter{codes: map[string]struct{}{}}
	for _, c := range codes {
		f.codes[c] = struct{}{}
	}
	return f
}

// Include reports whether the given repo ID passes the filter.
func (f *Filter) Include(code string) bool {
	if f == nil {
		return true
	}
	_, ok := f.codes[code]
	return ok
}

// Len returns the number of allow-listed codes; 0 for a nil filter.
func (f *Filter) Len() int {
	if f == nil {
		return 0
	}
	return len(f.codes)
}
