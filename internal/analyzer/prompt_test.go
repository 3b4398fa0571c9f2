package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anotherai-dev/versiondiff/internal/commonality"
	"github.com/anotherai-dev/versiondiff/internal/version"
)

func promptOf(msgs ...map[string]any) []any {
	out := make([]any, len(msgs))
	for i, m := range msgs {
		out[i] = m
	}
	return out
}

func msg(role, content string) map[string]any {
	return map[string]any{"role": role, "content": content}
}

func TestSharedPromptContent(t *testing.T) {
	e := commonality.NewDefault()

	t.Run("no prompts", func(t *testing.T) {
		vs := []version.Record{{"model": "a"}, {"model": "b"}}
		require.Nil(t, SharedPromptContent(vs, e))
	})

	t.Run("single prompt returned as-is", func(t *testing.T) {
		vs := []version.Record{
			{"model": "a", "prompt": promptOf(msg("system", "Be brief."), msg("user", "Hi."))},
			{"model": "b"},
		}
		got := SharedPromptContent(vs, e)
		require.Len(t, got, 2)
		require.Equal(t, "Be brief.", got[0].Text())
	})

	t.Run("identical prompts fully shared", func(t *testing.T) {
		p := promptOf(msg("system", "You are a careful reviewer."))
		vs := []version.Record{
			{"model": "a", "prompt": p},
			{"model": "b", "prompt": p},
		}
		got := SharedPromptContent(vs, e)
		require.Len(t, got, 1)
		require.Equal(t, version.RoleSystem, got[0].Role)
		require.Equal(t, "You are a careful reviewer.", got[0].Text())
	})

	t.Run("common prefix surfaces per position", func(t *testing.T) {
		vs := []version.Record{
			{"model": "a", "prompt": promptOf(msg("system", "The cat sat on the mat"))},
			{"model": "b", "prompt": promptOf(msg("system", "The cat sat on the rug"))},
		}
		got := SharedPromptContent(vs, e)
		require.Len(t, got, 1)
		require.Contains(t, got[0].Text(), "The cat sat on the")
	})

	t.Run("role mismatch at a position shares nothing", func(t *testing.T) {
		// Same messages, different order: positional alignment means no
		// shared content — intentional, the UI depends on it.
		vs := []version.Record{
			{"model": "a", "prompt": promptOf(msg("system", "Be precise always."), msg("user", "Review the data."))},
			{"model": "b", "prompt": promptOf(msg("user", "Review the data."), msg("system", "Be precise always."))},
		}
		require.Empty(t, SharedPromptContent(vs, e))
	})

	t.Run("uneven prompt lengths align on shared positions", func(t *testing.T) {
		vs := []version.Record{
			{"model": "a", "prompt": promptOf(msg("system", "Classify the ticket."), msg("user", "Ticket body follows."))},
			{"model": "b", "prompt": promptOf(msg("system", "Classify the ticket."))},
		}
		got := SharedPromptContent(vs, e)
		// Position 1 exists in only one prompt, so only position 0 can
		// contribute.
		require.Len(t, got, 1)
		require.Equal(t, "Classify the ticket.", got[0].Text())
	})

	t.Run("non-text content blocks the group", func(t *testing.T) {
		toolOnly := map[string]any{"role": "assistant", "content": map[string]any{"tool": "search"}}
		vs := []version.Record{
			{"model": "a", "prompt": promptOf(toolOnly)},
			{"model": "b", "prompt": promptOf(msg("assistant", "plain text"))},
		}
		require.Empty(t, SharedPromptContent(vs, e))
	})

	t.Run("array content parts join before extraction", func(t *testing.T) {
		parts := map[string]any{"role": "user", "content": []any{
			map[string]any{"type": "text", "text": "Compare the versions carefully"},
			map[string]any{"type": "file", "url": "data.csv"},
		}}
		vs := []version.Record{
			{"model": "a", "prompt": promptOf(parts)},
			{"model": "b", "prompt": promptOf(msg("user", "Compare the versions carefully please"))},
		}
		got := SharedPromptContent(vs, e)
		require.Len(t, got, 1)
		require.Contains(t, strings.ToLower(got[0].Text()), "compare the versions carefully")
	})
}
