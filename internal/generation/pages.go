package generation

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// card is one navigation entry on an index page.
type card struct {
	Title string
	Href  string
}

// indexFrontmatter renders the minimal header of an index page. Titles come
// from plan data, so they go through yaml.v3 for safe quoting like every
// other frontmatter string.
func indexFrontmatter(title string) (string, error) {
	out, err := yaml.Marshal(struct {
		Title string `yaml:"title"`
	}{title})
	if err != nil {
		return "", err
	}
	return "---\n" + string(out) + "---", nil
}

// indexPage renders an index document: frontmatter plus one Card per child.
func indexPage(title string, cards []card) (string, error) {
	fm, err := indexFrontmatter(title)
	if err != nil {
		return "", err
	}

	lines := []string{fm, "", "<Cards>"}
	for _, c := range cards {
		lines = append(lines, fmt.Sprintf("  <Card title=%q href=%q />", c.Title, c.Href))
	}
	lines = append(lines, "</Cards>")
	return strings.Join(lines, "\n"), nil
}

// programMeta is the sidecar marking a program directory as a root,
// expandable-by-default navigation node.
type programMeta struct {
	Title       string   `json:"title"`
	Root        bool     `json:"root"`
	DefaultOpen bool     `json:"defaultOpen"`
	Pages       []string `json:"pages"`
}

// yearMeta is the sidecar for a graduation-year directory.
type yearMeta struct {
	Title string `json:"title"`
}

func marshalMeta(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// docTitle recovers a display title from the head of a course document,
// falling back when the first lines carry no usable text. It understands
// both frontmatter title lines and a leading markdown heading, and drops a
// "CODE - " prefix when present.
func docTitle(content, fallback string) string {
	lines := strings.Split(content, "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "---" {
			continue
		}
		raw := trimmed
		if t, ok := strings.CutPrefix(trimmed, "title:"); ok {
			raw = strings.Trim(strings.TrimSpace(t), `"'`)
		}
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "# "))
		if _, rest, ok := strings.Cut(raw, " - "); ok {
			return strings.TrimSpace(rest)
		}
		return raw
	}
	return fallback
}
