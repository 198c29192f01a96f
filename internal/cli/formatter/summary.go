package formatter

import (
	"fmt"
	"strings"

	"github.com/hitsz-openauto/coursegen/internal/generation"
)

// FormatSummary renders the end-of-run summary for a build. With styled set,
// lipgloss colors are applied; otherwise the same text is emitted plain for
// pipes and CI logs.
func FormatSummary(r *generation.Report, styled bool) string {
	var b strings.Builder

	b.WriteString(header(styled, "Build Summary") + "\n")
	b.WriteString(fmt.Sprintf("%s %s\n", render(styled, Dim, "run"), r.RunID))

	b.WriteString(line(styled, StyleGreen, "course pages", r.CoursePages))
	b.WriteString(line(styled, StyleGreen, "index pages", r.IndexPages))
	b.WriteString(line(styled, StyleBlue, "meta files", r.MetaFiles))
	b.WriteString(line(styled, StyleBlue, "files formatted", r.FilesFormatted))

	if len(r.SkippedCourses) > 0 {
		b.WriteString("\n")
		warn := fmt.Sprintf("skipped %d course(s) without resource documents:", len(r.SkippedCourses))
		if styled {
			warn = StyleYellow.Render(warn)
		}
		b.WriteString(warn + "\n")
		for _, id := range r.SkippedCourses {
			b.WriteString("  " + render(styled, Dim, id) + "\n")
		}
	}

	return b.String()
}

// FormatFormatRun renders the summary of a standalone format pass.
func FormatFormatRun(docsDir string, modified int, styled bool) string {
	var b strings.Builder
	b.WriteString(header(styled, "Format") + "\n")
	b.WriteString(fmt.Sprintf("%s %s\n", render(styled, Dim, "directory"), docsDir))
	b.WriteString(line(styled, StyleBlue, "files formatted", modified))
	return b.String()
}

func line(styled bool, style interface{ Render(...string) string }, label string, n int) string {
	count := fmt.Sprintf("%d", n)
	if styled {
		count = style.Render(count)
	}
	return fmt.Sprintf("  %-16s %s\n", label, count)
}

func render(styled bool, f func(string) string, text string) string {
	if !styled {
		return text
	}
	return f(text)
}

// header keeps the same layout in both modes so piped output stays aligned
// with what the terminal shows.
func header(styled bool, text string) string {
	if styled {
		return Header(text)
	}
	upper := strings.ToUpper(text)
	return upper + "\n" + strings.Repeat("─", len(upper))
}
