package format

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FormatAll applies Format to every .mdx document under root, writing back
// only files whose content changed. It returns the number of modified files.
func FormatAll(root string) (int, error) {
	modified := 0

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".mdx") {
			return nil
		}

		original, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		formatted := Format(string(original))
		if formatted == string(original) {
			return nil
		}
		if err := os.WriteFile(path, []byte(formatted), 0644); err != nil {
			return err
		}
		modified++
		return nil
	})
	if err != nil {
		return 0, err
	}
	return modified, nil
}
