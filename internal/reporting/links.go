package reporting

import (
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ExtractLinks parses each text as markdown and returns the deduplicated,
// sorted set of link, image and autolink destinations. Prompts routinely
// reference documentation or data URLs; the report lists them so
// reviewers can see which external resources each experiment leans on.
func ExtractLinks(texts []string) []string {
	seen := make(map[string]struct{})
	for _, t := range texts {
		for _, link := range extractLinksFromSource([]byte(t)) {
			if link != "" {
				seen[link] = struct{}{}
			}
		}
	}
	if len(seen) == 0 {
		return nil
	}

	out := make([]string, 0, len(seen))
	for link := range seen {
		out = append(out, link)
	}
	sort.Strings(out)
	return out
}

// extractLinksFromSource parses markdown bytes and extracts link/image
// destinations.
func extractLinksFromSource(source []byte) []string {
	md := goldmark.New()
	reader := text.NewReader(source)
	doc := md.Parser().Parse(reader)

	var links []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.Link:
			links = append(links, string(v.Destination))
		case *ast.Image:
			links = append(links, string(v.Destination))
		case *ast.AutoLink:
			target := string(v.Label(source))
			if len(v.Protocol) > 0 && !strings.HasPrefix(target, string(v.Protocol)) {
				target = string(v.Protocol) + target
			}
			links = append(links, target)
		}
		return ast.WalkContinue, nil
	})
	return links
}
