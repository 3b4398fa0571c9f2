package commonality

import (
	"sort"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// maxFragments caps the number of fragments in the final output to keep it
// readable.
const maxFragments = 10

// pairwiseStrategy computes shared text by Myers-diff alignment. Texts are
// sorted ascending by length so the fold starts from the most constrained
// pair; only the equal runs of each alignment survive, and the running
// remainder is folded against every further text. An empty remainder
// short-circuits the whole extraction.
type pairwiseStrategy struct{}

func (pairwiseStrategy) commonText(texts []string) string {
	sorted := make([]string, len(texts))
	copy(sorted, texts)
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) < len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})

	remainder, fragments := commonBetween(sorted[0], sorted[1])
	if strings.TrimSpace(remainder) == "" {
		return ""
	}
	for _, next := range sorted[2:] {
		remainder, fragments = commonBetween(remainder, next)
		if strings.TrimSpace(remainder) == "" {
			return ""
		}
	}

	sort.SliceStable(fragments, func(i, j int) bool {
		if len(fragments[i]) != len(fragments[j]) {
			return len(fragments[i]) > len(fragments[j])
		}
		return fragments[i] < fragments[j]
	})
	if len(fragments) > maxFragments {
		fragments = fragments[:maxFragments]
	}
	return strings.TrimSpace(strings.Join(fragments, " "))
}

// commonBetween aligns a and b and keeps only the equal runs whose trimmed
// length is at least minFragmentLen. It returns both the space-joined
// remainder (the input for the next fold) and the individual fragments.
func commonBetween(a, b string) (string, []string) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)

	var fragments []string
	for _, d := range diffs {
		if d.Type != diffmatchpatch.DiffEqual {
			continue
		}
		trimmed := strings.TrimSpace(d.Text)
		if len(trimmed) >= minFragmentLen {
			fragments = append(fragments, trimmed)
		}
	}
	return strings.Join(fragments, " "), fragments
}
