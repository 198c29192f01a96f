package tree

import (
	"fmt"
	"strings"

	"github.com/hitsz-openauto/coursegen/internal/domain"
)

// RenderJSX renders tree nodes as the nested Folder/File markup fragment
// embedded in course pages. Rendering is a pure function of the tree and
// preserves the sorted order exactly; empty input yields an empty string.
func RenderJSX(nodes []domain.TreeNode, indentLevel int) string {
	indent := strings.Repeat("  ", indentLevel)
	var lines []string

	for _, node := range nodes {
		if node.IsFolder() {
			lines = append(lines, fmt.Sprintf("%s<Folder name=%q>", indent, node.Name))
			lines = append(lines, RenderJSX(node.Children, indentLevel+1))
			lines = append(lines, fmt.Sprintf("%s</Folder>", indent))
			continue
		}

		props := []string{fmt.Sprintf("name=%q", node.Name)}
		if node.URL != "" {
			props = append(props, fmt.Sprintf("url=%q", node.URL))
		}
		if node.Date != "" {
			props = append(props, fmt.Sprintf("date=%q", node.Date))
		}
		if node.Size > 0 {
			props = append(props, fmt.Sprintf("size={%d}", node.Size))
		}
		lines = append(lines, fmt.Sprintf("%s<File %s />", indent, strings.Join(props, " ")))
	}

	return strings.Join(lines, "\n")
}
