package reporting

// InterpretSimilarity returns a plain-language label for a prompt
// similarity score (0–1).
func InterpretSimilarity(score float64) string {
	pct := score * 100
	switch {
	case pct >= 100:
		return "identical"
	case pct > 90:
		return "near-identical (>90%)"
	case pct >= 70:
		return "mostly shared (70-90%)"
	case pct >= 40:
		return "partially shared (40-70%)"
	default:
		return "largely different (<40%)"
	}
}
