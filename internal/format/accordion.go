package format

import (
	"regexp"
	"strings"
)

var (
	detailsSingleLine = regexp.MustCompile(`\{\{% details title="([^"]*)"[^%]*%\}\}\s*(.+?)\s*\{\{% /details %\}\}`)
	detailsOpen       = regexp.MustCompile(`\{\{% details title="([^"]*)"[^%]*%\}\}`)
	detailsTrailing   = regexp.MustCompile(`([^\n])\s*\{\{% /details %\}\}`)
)

// hugoDetailsToAccordion rewrites the legacy details shortcode into
// Accordion components, then wraps consecutive Accordion blocks in a single
// Accordions container. Title and body content are preserved verbatim.
func hugoDetailsToAccordion(content string) string {
	content = detailsSingleLine.ReplaceAllString(content, "<Accordion title=\"${1}\">\n${2}\n</Accordion>")
	content = detailsOpen.ReplaceAllString(content, `<Accordion title="${1}">`)
	// Closing tags sharing a line with content move to their own line.
	content = detailsTrailing.ReplaceAllString(content, "${1}\n</Accordion>")
	content = strings.ReplaceAll(content, "{{% /details %}}", "</Accordion>")

	return wrapAccordions(content)
}

// wrapAccordions wraps each run of consecutive Accordion blocks in an
// Accordions container. Runs already inside a container are passed through
// untouched so the rewrite is idempotent.
func wrapAccordions(content string) string {
	lines := strings.Split(content, "\n")
	var result []string
	var buffer []string

	inContainer := false
	inSequence := false
	depth := 0

	flush := func() {
		result = append(result, "<Accordions>")
		result = append(result, buffer...)
		result = append(result, "</Accordions>")
		buffer = nil
		inSequence = false
	}

	for i, line := range lines {
		if !inSequence && strings.Contains(line, "<Accordions>") {
			inContainer = true
		}

		if inContainer {
			result = append(result, line)
			if strings.Contains(line, "</Accordions>") {
				inContainer = false
			}
			continue
		}

		switch {
		case !inSequence && strings.Contains(line, "<Accordion "):
			inSequence = true
			buffer = append(buffer, line)
			depth = 1

		case inSequence:
			buffer = append(buffer, line)
			if strings.Contains(line, "<Accordion ") {
				depth++
			}
			if strings.Contains(line, "</Accordion>") {
				depth--
			}

			if depth == 0 {
				// The sequence continues only if the next non-empty line
				// opens another Accordion.
				nextIsAccordion := false
				for _, next := range lines[i+1:] {
					next = strings.TrimSpace(next)
					if next == "" {
						continue
					}
					nextIsAccordion = strings.Contains(next, "<Accordion ")
					break
				}
				if !nextIsAccordion {
					flush()
				}
			}

		default:
			result = append(result, line)
		}
	}

	if len(buffer) > 0 {
		flush()
	}

	return strings.Join(result, "\n")
}
