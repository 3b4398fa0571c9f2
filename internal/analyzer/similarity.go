package analyzer

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/anotherai-dev/versiondiff/internal/version"
)

// PromptSimilarity scores how close two prompts are, 0.0 to 1.0, using
// Levenshtein distance over their concatenated text. It is a reporting
// aid for prompts that already classified as differing; it never feeds
// back into the matching/differing classification itself.
func PromptSimilarity(a, b []version.Message) float64 {
	ta := promptText(a)
	tb := promptText(b)
	if ta == tb {
		return 1.0
	}
	if ta == "" || tb == "" {
		return 0.0
	}

	distance := levenshtein.ComputeDistance(ta, tb)

	// The distance operates on runes, so the bound must too.
	maxLen := utf8.RuneCountInString(ta)
	if n := utf8.RuneCountInString(tb); n > maxLen {
		maxLen = n
	}

	similarity := 1.0 - float64(distance)/float64(maxLen)
	if similarity < 0 {
		return 0.0
	}
	return similarity
}

func promptText(msgs []version.Message) string {
	var parts []string
	for _, m := range msgs {
		if t := m.Text(); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, "\n")
}
