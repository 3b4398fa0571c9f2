package commonality

import (
	"sort"
	"strings"
	"unicode"
)

const (
	// maxPhraseTexts caps how many of the other texts each candidate
	// phrase is checked against.
	maxPhraseTexts = 5
	// maxSentences caps how many sentences of the anchor text are
	// examined for phrase windows.
	maxSentences = 15
	// minSentenceLen filters trivially short sentences.
	minSentenceLen = 15

	minPhraseWords = 3
	maxPhraseWords = 6
	minPhraseLen   = 12
	maxPhraseLen   = 120

	// maxWordPhraseResults caps the combined phrase/word output.
	maxWordPhraseResults = 8
	// minWordPhraseResults is backfilled with bare common words when the
	// phrase search comes up short.
	minWordPhraseResults = 3
)

// wordPhraseStrategy handles large corpora: it intersects per-text word
// sets and searches the first text's sentences for 3-6 word windows found
// verbatim in every other text. Only the first text anchors the phrase
// search; that asymmetry is a deliberate performance trade-off for large
// corpora. An empty word intersection falls back entirely to the pairwise
// strategy.
type wordPhraseStrategy struct {
	fallback pairwiseStrategy
}

func (s wordPhraseStrategy) commonText(texts []string) string {
	common := commonWords(texts)
	if len(common) == 0 {
		return s.fallback.commonText(texts)
	}

	lowered := make([]string, len(texts))
	for i, t := range texts {
		lowered[i] = strings.ToLower(t)
	}

	phrases := commonPhrases(texts[0], lowered)
	words := casedWords(common, texts)

	candidates := make([]string, 0, len(phrases)+len(words))
	candidates = append(candidates, phrases...)
	candidates = append(candidates, words...)
	sortByLengthDesc(candidates)

	var kept []string
	for _, c := range candidates {
		if len(kept) >= maxWordPhraseResults {
			break
		}
		if coveredBy(kept, c) {
			continue
		}
		kept = append(kept, c)
	}

	// Backfill with still-uncovered common words when the phrase search
	// produced too few results to be useful on its own.
	if len(kept) < minWordPhraseResults {
		for _, w := range words {
			if len(kept) >= minWordPhraseResults {
				break
			}
			if coveredBy(kept, w) {
				continue
			}
			kept = append(kept, w)
		}
	}

	return strings.Join(kept, " ")
}

// commonWords intersects the lowercase token sets of all texts,
// short-circuiting as soon as the running intersection is empty.
func commonWords(texts []string) map[string]struct{} {
	common := tokenize(texts[0])
	for _, t := range texts[1:] {
		if len(common) == 0 {
			return nil
		}
		next := tokenize(t)
		for w := range common {
			if _, ok := next[w]; !ok {
				delete(common, w)
			}
		}
	}
	return common
}

// tokenize splits text into lowercase alphanumeric words of length >= 3.
// Tokens must start with an alphanumeric, '@', '.' or '-' rune, which
// keeps emails and URLs comparable.
func tokenize(text string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, field := range strings.Fields(strings.ToLower(text)) {
		w := trimPunctuation(field)
		if len(w) < minFragmentLen {
			continue
		}
		if !validTokenStart(firstRune(w)) {
			continue
		}
		out[w] = struct{}{}
	}
	return out
}

func trimPunctuation(w string) string {
	return strings.Trim(w, `,;:!?"'()[]{}<>`)
}

func validTokenStart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '@' || r == '.' || r == '-'
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

// commonPhrases slides 3-6 word windows over the anchor text's sentences
// and keeps windows present verbatim (case-insensitively) in every other
// text, bounded by phrase length and minimum content density.
func commonPhrases(anchor string, lowered []string) []string {
	others := lowered[1:]
	if len(others) > maxPhraseTexts {
		others = others[:maxPhraseTexts]
	}

	seen := make(map[string]struct{})
	var phrases []string

	examined := 0
	for _, sentence := range splitSentences(anchor) {
		if examined >= maxSentences {
			break
		}
		examined++

		words := strings.Fields(sentence)
		for size := minPhraseWords; size <= maxPhraseWords; size++ {
			for start := 0; start+size <= len(words); start++ {
				phrase := strings.Join(words[start:start+size], " ")
				if len(phrase) < minPhraseLen || len(phrase) > maxPhraseLen {
					continue
				}
				if len(strings.TrimSpace(phrase))*2 < len(phrase) {
					continue
				}
				low := strings.ToLower(phrase)
				if _, dup := seen[low]; dup {
					continue
				}
				if !containedInAll(low, others) {
					continue
				}
				seen[low] = struct{}{}
				phrases = append(phrases, phrase)
			}
		}
	}
	return phrases
}

func containedInAll(needle string, haystacks []string) bool {
	for _, h := range haystacks {
		if !strings.Contains(h, needle) {
			return false
		}
	}
	return true
}

// splitSentences breaks text on sentence punctuation and newlines, keeping
// only sentences longer than minSentenceLen characters.
func splitSentences(text string) []string {
	raw := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?' || r == '\n'
	})
	var out []string
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if len(s) > minSentenceLen {
			out = append(out, s)
		}
	}
	return out
}

// casedWords restores each common word's original casing from its first
// occurrence in any input text, ordered longest-first so the output is
// deterministic for a given multiset of inputs.
func casedWords(common map[string]struct{}, texts []string) []string {
	words := make([]string, 0, len(common))
	for w := range common {
		words = append(words, w)
	}
	sortByLengthDesc(words)

	for i, w := range words {
		if cased, ok := originalCasing(w, texts); ok {
			words[i] = cased
		}
	}
	return words
}

func originalCasing(lower string, texts []string) (string, bool) {
	for _, t := range texts {
		for _, field := range strings.Fields(t) {
			trimmed := trimPunctuation(field)
			if strings.ToLower(trimmed) == lower {
				return trimmed, true
			}
		}
	}
	return "", false
}

// coveredBy reports whether candidate is already represented by a longer
// kept match (case-insensitive substring check).
func coveredBy(kept []string, candidate string) bool {
	low := strings.ToLower(candidate)
	for _, k := range kept {
		if strings.Contains(strings.ToLower(k), low) {
			return true
		}
	}
	return false
}

func sortByLengthDesc(items []string) {
	sort.SliceStable(items, func(i, j int) bool {
		if len(items[i]) != len(items[j]) {
			return len(items[i]) > len(items[j])
		}
		return items[i] < items[j]
	})
}
