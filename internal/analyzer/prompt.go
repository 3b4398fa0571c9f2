package analyzer

import (
	"sort"
	"strings"

	"github.com/anotherai-dev/versiondiff/internal/commonality"
	"github.com/anotherai-dev/versiondiff/internal/version"
)

// SharedPromptContent returns the prompt content shared by every version
// that has a prompt, as synthesized messages ordered by message position.
//
// Alignment is positional, not role-matched: two prompts carrying the same
// messages in a different order share nothing at those positions. Prompts
// of versions of the same experiment are expected to be structurally
// parallel, and the review surface depends on this exact behavior.
func SharedPromptContent(versions []version.Record, extractor *commonality.Extractor) []version.Message {
	var prompts [][]version.Message
	for _, v := range versions {
		if p := v.Prompt(); len(p) > 0 {
			prompts = append(prompts, p)
		}
	}
	if len(prompts) == 0 {
		return nil
	}
	if len(prompts) == 1 {
		return prompts[0]
	}

	maxLen := 0
	for _, p := range prompts {
		if len(p) > maxLen {
			maxLen = len(p)
		}
	}

	var shared []version.Message
	for pos := 0; pos < maxLen; pos++ {
		byRole := make(map[version.Role][]string)
		for _, p := range prompts {
			if pos >= len(p) {
				continue
			}
			m := p[pos]
			byRole[m.Role] = append(byRole[m.Role], m.Text())
		}

		// A role group only contributes when every prompt has a message
		// of that role at this position.
		for _, role := range sortedRoles(byRole) {
			texts := byRole[role]
			if len(texts) != len(prompts) {
				continue
			}
			if anyBlank(texts) {
				continue
			}
			if common := extractor.CommonText(texts); strings.TrimSpace(common) != "" {
				shared = append(shared, version.Message{Role: role, Content: common})
			}
		}
	}
	return shared
}

func anyBlank(texts []string) bool {
	for _, t := range texts {
		if strings.TrimSpace(t) == "" {
			return true
		}
	}
	return false
}

func sortedRoles(byRole map[version.Role][]string) []version.Role {
	roles := make([]version.Role, 0, len(byRole))
	for r := range byRole {
		roles = append(roles, r)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}
