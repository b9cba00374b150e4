package serviceImp

import (
	"strings"
	"unicode"
)

// chunkText splits text into pieces of roughly maxRunes, cutting at the first
// newline past the limit. Text without newlines is cut at whitespace once it
// runs to twice the limit.
func chunkText(text string, maxRunes int) []string {
	if maxRunes <= 0 {
		maxRunes = chunkRunes
	}
	text = strings.ReplaceAll(text, "\r", "")

	var parts []string
	var cur strings.Builder
	count := 0
	flush := func() {
		if s := strings.TrimSpace(cur.String()); s != "" {
			parts = append(parts, s)
		}
		cur.Reset()
		count = 0
	}
	for _, r := range text {
		cur.WriteRune(r)
		count++
		if (count >= maxRunes && r == '\n') || (count >= 2*maxRunes && unicode.IsSpace(r)) {
			flush()
		}
	}
	flush()
	return parts
}

// terms returns the distinct lower-cased words of q.
func terms(q string) []string {
	fields := strings.FieldsFunc(strings.ToLower(q), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	seen := make(map[string]bool, len(fields))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}
