package format

import "strings"

// escapeMathBraces escapes curly braces inside $...$ and $$...$$ math
// spans. The target renderer treats unescaped braces as template syntax.
// Already-escaped braces are left alone, which keeps the rule idempotent.
func escapeMathBraces(content string) string {
	chars := []rune(content)
	var b strings.Builder
	b.Grow(len(content))

	i := 0
	for i < len(chars) {
		if chars[i] != '$' {
			b.WriteRune(chars[i])
			i++
			continue
		}

		isDisplay := i+1 < len(chars) && chars[i+1] == '$'
		delimLen := 1
		if isDisplay {
			delimLen = 2
		}

		// Find the closing delimiter.
		j := i + delimLen
		foundClose := false
		for j < len(chars) {
			if chars[j] == '$' {
				if !isDisplay || (j+1 < len(chars) && chars[j+1] == '$') {
					foundClose = true
					break
				}
			}
			j++
		}

		if !foundClose {
			b.WriteRune(chars[i])
			i++
			continue
		}

		b.WriteString(strings.Repeat("$", delimLen))
		for k := i + delimLen; k < j; k++ {
			if (chars[k] == '{' || chars[k] == '}') && (k == 0 || chars[k-1] != '\\') {
				b.WriteRune('\\')
			}
			b.WriteRune(chars[k])
		}
		b.WriteString(strings.Repeat("$", delimLen))

		i = j + delimLen
	}

	return b.String()
}
