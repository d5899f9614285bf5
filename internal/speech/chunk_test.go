package speech

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSplitText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxLen   int
		expected []string
	}{
		{"short", "Hello world", 100, []string{"Hello world"}},
		{"whitespace collapsed", "  Hello \n\t world  ", 100, []string{"Hello world"}},
		{"sentences", "One. Two! Three?", 100, []string{"One.", "Two!", "Three?"}},
		{"word wrap", "aaa bbb ccc", 7, []string{"aaa bbb", "ccc"}},
		{"exact fit", "ab cd", 5, []string{"ab cd"}},
		{"long word", "abcdefgh", 3, []string{"abc", "def", "gh"}},
		{"empty", "   ", 100, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitText(tt.text, tt.maxLen))
		})
	}
}

func TestSplitText_RuneSafe(t *testing.T) {
	text := strings.Repeat("日本語", 20)
	chunks := SplitText(text, 7)

	assert.Equal(t, text, strings.Join(chunks, ""))
	for _, chunk := range chunks {
		assert.True(t, utf8.ValidString(chunk))
		assert.LessOrEqual(t, utf8.RuneCountInString(chunk), 7)
	}
}

func TestSplitText_NeverExceedsMax(t *testing.T) {
	text := strings.Repeat("The quick brown fox jumps over the lazy dog, ", 30)
	for _, chunk := range SplitText(text, 100) {
		assert.LessOrEqual(t, utf8.RuneCountInString(chunk), 100)
		assert.NotEmpty(t, chunk)
	}
}
