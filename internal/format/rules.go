package format

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	htmlCommentPattern = regexp.MustCompile(`(?s)<!--.*?-->`)
	brPattern          = regexp.MustCompile(`<br\s*>`)
	hrPattern          = regexp.MustCompile(`<hr\s*>`)
	trBeforeClose      = regexp.MustCompile(`<tr>\s*</table>`)
	emptyTRPattern     = regexp.MustCompile(`<tr>\s*</tr>`)
	stylePattern       = regexp.MustCompile(`style="([^"]*)"`)
)

// stripHTMLComments removes HTML comment blocks, including multiline ones.
func stripHTMLComments(content string) string {
	return htmlCommentPattern.ReplaceAllString(content, "")
}

// dropBadgeLines removes any line carrying a shields.io badge image.
func dropBadgeLines(content string) string {
	lines := strings.Split(content, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if !strings.Contains(line, "https://img.shields.io") {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// selfCloseVoidTags rewrites bare <br> and <hr> into the explicit
// self-closing form the MDX renderer requires.
func selfCloseVoidTags(content string) string {
	content = brPattern.ReplaceAllString(content, "<br />")
	return hrPattern.ReplaceAllString(content, "<hr />")
}

// repairTableHTML fixes table markup patterns the upstream source format is
// known to emit: a dangling <tr> before </table> and empty rows.
func repairTableHTML(content string) string {
	content = trBeforeClose.ReplaceAllString(content, "</table>")
	return emptyTRPattern.ReplaceAllString(content, "")
}

// cssPropertyToCamel converts a hyphenated CSS property name to the
// camel-case form JSX expects.
func cssPropertyToCamel(prop string) string {
	parts := strings.Split(strings.TrimSpace(prop), "-")
	var b strings.Builder
	for i, part := range parts {
		if part == "" {
			continue
		}
		if i == 0 {
			b.WriteString(part)
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// styleToJSX rewrites inline style attribute strings into the object-literal
// form. An attribute with no parseable properties is removed entirely.
func styleToJSX(content string) string {
	return stylePattern.ReplaceAllStringFunc(content, func(match string) string {
		styleStr := stylePattern.FindStringSubmatch(match)[1]

		var props []string
		for _, prop := range strings.Split(styleStr, ";") {
			prop = strings.TrimSpace(prop)
			if prop == "" || !strings.Contains(prop, ":") {
				continue
			}
			parts := strings.SplitN(prop, ":", 2)
			name := cssPropertyToCamel(parts[0])
			value := strings.TrimSpace(parts[1])
			props = append(props, fmt.Sprintf("%s: %q", name, value))
		}

		if len(props) == 0 {
			return ""
		}
		return fmt.Sprintf("style={{%s}}", strings.Join(props, ", "))
	})
}
