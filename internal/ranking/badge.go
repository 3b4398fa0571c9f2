// Package ranking classifies one metric value against the population of
// comparable values across versions, producing best/worst badges with a
// quantified relative difference, plus percentile statistics.
package ranking

import "fmt"

// Kind tags a metric's semantics. It changes only the wording and
// polarity of the relative text, never the ranking math.
type Kind string

const (
	KindCost     Kind = "cost"
	KindDuration Kind = "duration"
	KindGeneric  Kind = ""
)

// Color classes picked up by the rendering layer.
const (
	ColorBest  = "green"
	ColorWorst = "red"
)

// Badge is the computed classification attached to a displayed metric
// value.
type Badge struct {
	IsBest       bool   `json:"is_best"`
	IsWorst      bool   `json:"is_worst"`
	RelativeText string `json:"relative_text,omitempty"`
	ColorClass   string `json:"color_class,omitempty"`
}

// Rank classifies value within population. An empty population, or one
// where every value is equal, yields a neutral badge with no text.
//
// The relative text is always a ratio >= 1 formatted to one decimal: the
// best value carries its margin over the worst (max/min), and any other
// value carries its distance from the best. Ratios whose divisor is not
// positive are omitted rather than computed.
func Rank(value float64, population []float64, higherIsBetter bool, kind Kind) Badge {
	if len(population) == 0 {
		return Badge{}
	}

	min, max := population[0], population[0]
	for _, v := range population[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min == max {
		return Badge{}
	}

	var b Badge
	if higherIsBetter {
		b.IsBest = value == max
		b.IsWorst = value == min
	} else {
		b.IsBest = value == min
		b.IsWorst = value == max
	}

	switch {
	case b.IsBest:
		b.ColorClass = ColorBest
	case b.IsWorst:
		b.ColorClass = ColorWorst
	}

	ratio, ok := relativeRatio(value, min, max, higherIsBetter, b.IsBest)
	if ok {
		b.RelativeText = formatRelative(ratio, kind, b.IsBest)
	}
	return b
}

func relativeRatio(value, min, max float64, higherIsBetter, isBest bool) (float64, bool) {
	if isBest {
		if min <= 0 {
			return 0, false
		}
		return max / min, true
	}
	if higherIsBetter {
		if value <= 0 {
			return 0, false
		}
		return max / value, true
	}
	if min <= 0 {
		return 0, false
	}
	return value / min, true
}

func formatRelative(ratio float64, kind Kind, isBest bool) string {
	text := fmt.Sprintf("%.1fx", ratio)
	switch kind {
	case KindCost:
		if isBest {
			return text + " cheaper"
		}
		return text + " more expensive"
	case KindDuration:
		if isBest {
			return text + " faster"
		}
		return text + " slower"
	default:
		return text
	}
}
