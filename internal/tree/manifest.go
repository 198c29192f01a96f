package tree

import (
	"encoding/json"
	"fmt"
	"os"
)

// Manifest is the flat per-course resource listing: relative path within the
// course repository mapped to file metadata. The source data carries no
// hierarchy; Build derives one.
type Manifest map[string]FileMeta

// FileMeta is the metadata recorded for one manifest entry. Both fields are
// optional in source data.
type FileMeta struct {
	Size *int64 `json:"size"`
	Time *int64 `json:"time"`
}

// LoadManifest reads and parses a course's manifest JSON file.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return m, nil
}
