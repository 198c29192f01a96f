package format

import "regexp"

// Rule is a single text-to-text rewrite. Rules are pure functions and must
// not re-match their own output: the whole pipeline applied twice has to
// equal the pipeline applied once.
type Rule interface {
	Name() string
	Apply(content string) string
}

type ruleFunc struct {
	name  string
	apply func(string) string
}

func (r ruleFunc) Name() string                { return r.name }
func (r ruleFunc) Apply(content string) string { return r.apply(content) }

// pipeline is the fixed rewrite order. Later rules assume earlier ones have
// already run (the accordion rule, for instance, sees style attributes in
// their JSX form).
var pipeline = []Rule{
	ruleFunc{"strip-html-comments", stripHTMLComments},
	ruleFunc{"drop-badge-lines", dropBadgeLines},
	ruleFunc{"self-close-void-tags", selfCloseVoidTags},
	ruleFunc{"repair-table-html", repairTableHTML},
	ruleFunc{"style-to-jsx", styleToJSX},
	ruleFunc{"escape-math-braces", escapeMathBraces},
	ruleFunc{"hugo-details-to-accordion", hugoDetailsToAccordion},
}

var blankRunPattern = regexp.MustCompile(`\n{3,}`)

// Format applies the full rewrite pipeline to one document and collapses
// runs of blank lines left behind by removals.
func Format(content string) string {
	for _, rule := range pipeline {
		content = rule.Apply(content)
	}
	return blankRunPattern.ReplaceAllString(content, "\n\n")
}

// Rules exposes the pipeline for per-rule testing.
func Rules() []Rule { return pipeline }
