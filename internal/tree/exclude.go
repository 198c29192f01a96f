package tree

import "strings"

// Repository housekeeping files that never belong in a rendered tree.
var (
	excludedNames      = []string{".gitkeep", "README.md", "LICENSE", "tag.txt"}
	excludedExtensions = []string{".toml"}
	excludedPrefixes   = []string{".github/"}
)

// Included reports whether a manifest path belongs in the file tree.
// Excluded entries are dropped before insertion, so a directory whose whole
// content is excluded contributes no node at all.
func Included(path string) bool {
	name := path
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		name = path[idx+1:]
	}

	for _, excluded := range excludedNames {
		if name == excluded {
			return false
		}
	}
	for _, ext := range excludedExtensions {
		if strings.HasSuffix(name, ext) {
			return false
		}
	}
	for _, prefix := range excludedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}
