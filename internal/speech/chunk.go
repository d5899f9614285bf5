package speech

import (
	"strings"
	"unicode/utf8"
)

// sentenceEnds force a chunk boundary after the word they finish
const sentenceEnds = ".!?;。！？；"

// SplitText breaks text into pieces of at most maxLen runes, preferring
// sentence ends, then word boundaries. Whitespace is collapsed.
func SplitText(text string, maxLen int) []string {
	if maxLen < 1 {
		maxLen = 1
	}

	var (
		chunks  []string
		current strings.Builder
		curLen  int
	)

	flush := func() {
		if curLen > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
			curLen = 0
		}
	}

	for _, word := range strings.Fields(text) {
		for _, piece := range splitLongWord(word, maxLen) {
			pieceLen := utf8.RuneCountInString(piece)
			if curLen > 0 && curLen+1+pieceLen > maxLen {
				flush()
			}
			if curLen > 0 {
				current.WriteByte(' ')
				curLen++
			}
			current.WriteString(piece)
			curLen += pieceLen
		}

		if last, _ := utf8.DecodeLastRuneInString(word); strings.ContainsRune(sentenceEnds, last) {
			flush()
		}
	}
	flush()

	return chunks
}

// splitLongWord cuts a word longer than maxLen runes into rune-safe pieces
func splitLongWord(word string, maxLen int) []string {
	if utf8.RuneCountInString(word) <= maxLen {
		return []string{word}
	}

	runes := []rune(word)
	pieces := make([]string, 0, len(runes)/maxLen+1)
	for start := 0; start < len(runes); start += maxLen {
		end := start + maxLen
		if end > len(runes) {
			end = len(runes)
		}
		pieces = append(pieces, string(runes[start:end]))
	}
	return pieces
}
