package extraction

import (
	"regexp"
	"strings"
)

// Sentence boundaries are runs of terminator characters; consecutive
// terminators ("!!", "?!") collapse into a single boundary.
var sentenceBoundary = regexp.MustCompile(`[.!?]+`)

// SplitSentences splits raw journal text into candidate sentences.
// Fragments are trimmed and empty fragments discarded, so leading or
// trailing terminators never produce a sentence. Order of appearance
// in the source text is preserved.
func SplitSentences(text string) []string {
	parts := sentenceBoundary.Split(text, -1)

	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}

	return sentences
}
