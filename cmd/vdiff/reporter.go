package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/anotherai-dev/versiondiff/internal/ranking"
	"github.com/anotherai-dev/versiondiff/internal/reporting"
)

const defaultRuleWidth = 70

// ruleWidth returns the horizontal rule width, following the terminal
// when stdout is one.
func ruleWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && w < defaultRuleWidth {
		return w
	}
	return defaultRuleWidth
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

func printComparisonTable(w io.Writer, c *reporting.Comparison) {
	fmt.Fprintln(w, strings.Repeat("=", ruleWidth()))
	fmt.Fprintln(w, " VERSION COMPARISON")
	fmt.Fprintln(w, strings.Repeat("=", ruleWidth()))
	fmt.Fprintln(w)

	// File listing
	for i, v := range c.Versions {
		line := fmt.Sprintf("  [%d] %s  (model: %s)", i+1, v.File, v.Model)
		if v.SharedPromptWith >= 0 && v.SharedPromptWith != i {
			line += fmt.Sprintf("  prompt: same as [%d]", v.SharedPromptWith+1)
		} else if i > 0 {
			line += fmt.Sprintf("  prompt: %.0f%% similar to [1]", v.PromptSimilarity*100)
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, strings.Repeat("-", ruleWidth()))
	fmt.Fprintln(w, " FIELDS")
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth()))
	fmt.Fprintf(w, "  %s  %s\n", padRight("Matching:", 12), joinOrNone(c.MatchingKeys))
	fmt.Fprintf(w, "  %s  %s\n", padRight("Differing:", 12), joinOrNone(c.DifferingKeys))
	fmt.Fprintln(w)

	if len(c.SharedPrompt) > 0 {
		fmt.Fprintln(w, strings.Repeat("-", ruleWidth()))
		fmt.Fprintln(w, " SHARED PROMPT CONTENT")
		fmt.Fprintln(w, strings.Repeat("-", ruleWidth()))
		for _, m := range c.SharedPrompt {
			fmt.Fprintf(w, "  %s  %s\n", padRight(string(m.Role)+":", 11), m.Text())
		}
		fmt.Fprintln(w)
	}

	if len(c.SharedSchemaPaths) > 0 {
		fmt.Fprintln(w, strings.Repeat("-", ruleWidth()))
		fmt.Fprintln(w, " SHARED SCHEMA KEY-PATHS")
		fmt.Fprintln(w, strings.Repeat("-", ruleWidth()))
		for _, p := range c.SharedSchemaPaths {
			fmt.Fprintf(w, "  %s\n", p)
		}
		fmt.Fprintln(w)
	}

	if len(c.Metrics) > 0 {
		fmt.Fprintln(w, strings.Repeat("-", ruleWidth()))
		fmt.Fprintln(w, " METRICS")
		fmt.Fprintln(w, strings.Repeat("-", ruleWidth()))
		for _, m := range c.Metrics {
			fmt.Fprintf(w, "  %s\n", m.Name)
			for i, v := range m.Values {
				fmt.Fprintf(w, "    [%d] %s%s\n", i+1, padRight(fmt.Sprintf("%.4g", v), 10), badgeText(m.Badges[i]))
			}
		}
		fmt.Fprintln(w)
	}

	if len(c.PromptLinks) > 0 {
		fmt.Fprintln(w, strings.Repeat("-", ruleWidth()))
		fmt.Fprintln(w, " REFERENCED LINKS")
		fmt.Fprintln(w, strings.Repeat("-", ruleWidth()))
		for _, l := range c.PromptLinks {
			fmt.Fprintf(w, "  %s\n", l)
		}
		fmt.Fprintln(w)
	}
}

func printRankTable(w io.Writer, r *rankReport) {
	fmt.Fprintln(w, strings.Repeat("=", ruleWidth()))
	fmt.Fprintf(w, " RANKING  %s", r.File)
	if r.Kind != "" {
		fmt.Fprintf(w, "  (kind: %s)", r.Kind)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", ruleWidth()))
	fmt.Fprintln(w)

	nameWidth := len("Sample")
	for _, s := range r.Samples {
		if sw := runewidth.StringWidth(s.Name); sw > nameWidth {
			nameWidth = sw
		}
	}

	fmt.Fprintf(w, "  %s  %s  %s\n", padRight("Sample", nameWidth), padRight("Value", 12), "Badge")
	for _, s := range r.Samples {
		fmt.Fprintf(w, "  %s  %s  %s\n",
			padRight(s.Name, nameWidth),
			padRight(fmt.Sprintf("%.4g", s.Value), 12),
			badgeText(s.Badge))
	}
	fmt.Fprintln(w)

	for i, p := range r.Percentiles {
		fmt.Fprintf(w, "  p%-4g %.4g\n", p, r.Values[i])
	}
	fmt.Fprintln(w)
}

// badgeText renders a badge for a plain-text table.
func badgeText(b ranking.Badge) string {
	switch {
	case b.IsBest:
		if b.RelativeText != "" {
			return "🏆 best (" + b.RelativeText + ")"
		}
		return "🏆 best"
	case b.IsWorst:
		if b.RelativeText != "" {
			return "worst (" + b.RelativeText + ")"
		}
		return "worst"
	case b.RelativeText != "":
		return b.RelativeText
	default:
		return "-"
	}
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
