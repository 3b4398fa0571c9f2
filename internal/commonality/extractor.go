// Package commonality extracts the textual content shared by a set of
// strings, so a review surface can render only the deltas between prompt
// variants. Two interchangeable strategies cover small and large corpora;
// results are memoized in a small bounded cache.
package commonality

import "strings"

// Config holds the strategy-selection thresholds and cache sizing. The
// thresholds are named so tests can target each strategy branch directly.
type Config struct {
	// PairwiseMaxTexts is the largest corpus (by text count) handled by
	// the pairwise diff strategy.
	PairwiseMaxTexts int
	// PairwiseMaxChars is the largest corpus (by total character count)
	// handled by the pairwise diff strategy.
	PairwiseMaxChars int
	// CacheSize bounds the memo cache; the oldest entry is dropped once
	// the capacity is exceeded.
	CacheSize int
}

// DefaultConfig returns the production thresholds.
func DefaultConfig() Config {
	return Config{
		PairwiseMaxTexts: 10,
		PairwiseMaxChars: 10000,
		CacheSize:        50,
	}
}

// minFragmentLen is the shortest trimmed fragment or token worth keeping.
const minFragmentLen = 3

// strategy is one way of computing the shared text of a corpus. Both
// implementations satisfy: identical inputs return that input unchanged,
// and fully disjoint inputs return "".
type strategy interface {
	commonText(texts []string) string
}

// Extractor computes shared text across prompt variants.
// Safe for concurrent use; the memo cache is mutex-guarded.
type Extractor struct {
	cfg        Config
	cache      *memoCache
	pairwise   pairwiseStrategy
	wordPhrase wordPhraseStrategy
}

// New returns an Extractor with the given thresholds.
func New(cfg Config) *Extractor {
	return &Extractor{
		cfg:        cfg,
		cache:      newMemoCache(cfg.CacheSize),
		pairwise:   pairwiseStrategy{},
		wordPhrase: wordPhraseStrategy{fallback: pairwiseStrategy{}},
	}
}

// NewDefault returns an Extractor with production thresholds.
func NewDefault() *Extractor { return New(DefaultConfig()) }

// CommonText returns the most salient substrings shared by every input
// text, longest first, joined by single spaces. Inputs shorter than three
// characters after trimming are discarded; with no valid inputs the result
// is "", and with exactly one it is that input verbatim.
//
// The result is deterministic for a given multiset of inputs. The memo
// cache only affects latency: clearing it never changes outputs.
func (e *Extractor) CommonText(texts []string) string {
	valid := make([]string, 0, len(texts))
	for _, t := range texts {
		if len(strings.TrimSpace(t)) >= minFragmentLen {
			valid = append(valid, t)
		}
	}
	if len(valid) == 0 {
		return ""
	}
	if len(valid) == 1 {
		return valid[0]
	}
	if allEqual(valid) {
		return valid[0]
	}

	key := cacheKey(valid)
	if cached, ok := e.cache.get(key); ok {
		return cached
	}

	result := e.selectStrategy(valid).commonText(valid)
	e.cache.put(key, result)
	return result
}

// ResetCache drops all memoized results.
func (e *Extractor) ResetCache() { e.cache.reset() }

// selectStrategy is a pure function of the corpus size: large corpora go
// through word/phrase intersection, everything else through pairwise
// diffing.
func (e *Extractor) selectStrategy(texts []string) strategy {
	if len(texts) > e.cfg.PairwiseMaxTexts || totalLen(texts) > e.cfg.PairwiseMaxChars {
		return e.wordPhrase
	}
	return e.pairwise
}

func allEqual(texts []string) bool {
	for _, t := range texts[1:] {
		if t != texts[0] {
			return false
		}
	}
	return true
}

func totalLen(texts []string) int {
	n := 0
	for _, t := range texts {
		n += len(t)
	}
	return n
}
