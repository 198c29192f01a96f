package plan

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// lookupTable maps course code -> plan ID -> repository ID. "DEFAULT" (or
// legacy lowercase "default") supplies the fallback for plans without an
// explicit entry.
type lookupTable map[string]map[string]string

// loadLookupTable reads lookup.yaml when present. Missing or unparseable
// files yield an empty table, which makes every course code its own repo ID.
func loadLookupTable(dataDir string) lookupTable {
	data, err := os.ReadFile(filepath.Join(dataDir, "lookup.yaml"))
	if err != nil {
		return lookupTable{}
	}
	var lt lookupTable
	if err := yaml.Unmarshal(data, &lt); err != nil {
		return lookupTable{}
	}
	return lt
}

// resolveRepoID maps a course code to its resource repository ID.
// Priority: exact plan-ID match, DEFAULT fallback, identity.
func resolveRepoID(lt lookupTable, courseCode, planID string) string {
	mapping, ok := lt[courseCode]
	if !ok {
		return courseCode
	}
	for _, key := range []string{planID, "DEFAULT", "default"} {
		if repo := strings.TrimSpace(mapping[key]); repo != "" {
			return repo
		}
	}
	return courseCode
}
