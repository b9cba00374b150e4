package serviceImp

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestChunkText(t *testing.T) {
	line := strings.Repeat("a", 400) + "\n"
	text := strings.Repeat(line, 6)

	parts := chunkText(text, 1000)
	assert.Len(t, parts, 2)
	for _, p := range parts {
		assert.NotEmpty(t, p)
	}
	assert.Equal(t, strings.Count(text, "a"), strings.Count(strings.Join(parts, ""), "a"))
}

func TestChunkText_LongSingleLine(t *testing.T) {
	text := strings.Repeat("word ", 1000)

	parts := chunkText(text, 1000)
	assert.Greater(t, len(parts), 1)
	for _, p := range parts {
		assert.LessOrEqual(t, utf8.RuneCountInString(p), 2000)
	}
}

func TestChunkText_Blank(t *testing.T) {
	assert.Empty(t, chunkText(" \n\r\n ", 1000))
	assert.Equal(t, []string{"short note"}, chunkText("  short note\n", 1000))
}

func TestTerms(t *testing.T) {
	assert.Equal(t, []string{"drip", "irrigation", "for", "rice"}, terms("Drip irrigation, for RICE? drip!"))
	assert.Empty(t, terms("  ?! "))
}
