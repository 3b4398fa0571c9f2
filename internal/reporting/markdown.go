package reporting

import (
	"fmt"
	"strings"
)

// FormatMarkdown renders the comparison as a markdown document suitable
// for posting on a PR or pasting into an experiment log.
func FormatMarkdown(c *Comparison) string {
	var b strings.Builder

	b.WriteString("## Version Comparison\n\n")

	b.WriteString("| # | File | Model | Shared Prompt | Prompt Similarity |\n")
	b.WriteString("|---|------|-------|---------------|-------------------|\n")
	for i, v := range c.Versions {
		shared := "—"
		if v.SharedPromptWith >= 0 && v.SharedPromptWith != i {
			shared = fmt.Sprintf("same as #%d", v.SharedPromptWith+1)
		}
		b.WriteString(fmt.Sprintf("| %d | %s | %s | %s | %.0f%% (%s) |\n",
			i+1, v.File, v.Model, shared, v.PromptSimilarity*100, InterpretSimilarity(v.PromptSimilarity)))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("**Matching fields (%d):** %s\n\n",
		len(c.MatchingKeys), joinOrNone(c.MatchingKeys)))
	b.WriteString(fmt.Sprintf("**Differing fields (%d):** %s\n\n",
		len(c.DifferingKeys), joinOrNone(c.DifferingKeys)))

	if len(c.SharedPrompt) > 0 {
		b.WriteString("### Shared prompt content\n\n")
		for _, m := range c.SharedPrompt {
			b.WriteString(fmt.Sprintf("- **%s:** %s\n", m.Role, m.Text()))
		}
		b.WriteString("\n")
	}

	if len(c.SharedSchemaPaths) > 0 {
		b.WriteString("### Shared schema key-paths\n\n")
		for _, p := range c.SharedSchemaPaths {
			b.WriteString(fmt.Sprintf("- `%s`\n", p))
		}
		b.WriteString("\n")
	}

	if len(c.Metrics) > 0 {
		b.WriteString("### Metrics\n\n")
		b.WriteString("| Metric |")
		for i := range c.Versions {
			b.WriteString(fmt.Sprintf(" #%d |", i+1))
		}
		b.WriteString("\n|--------|")
		for range c.Versions {
			b.WriteString("----|")
		}
		b.WriteString("\n")
		for _, m := range c.Metrics {
			b.WriteString(fmt.Sprintf("| %s |", m.Name))
			for i, v := range m.Values {
				cell := fmt.Sprintf(" %.4g", v)
				if text := m.Badges[i].RelativeText; text != "" {
					cell += " (" + text + ")"
				}
				b.WriteString(cell + " |")
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(c.PromptLinks) > 0 {
		b.WriteString("### Referenced links\n\n")
		for _, l := range c.PromptLinks {
			b.WriteString(fmt.Sprintf("- %s\n", l))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return "`" + strings.Join(items, "`, `") + "`"
}
