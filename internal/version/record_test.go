package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecord_Accessors(t *testing.T) {
	r := Record{
		"model": "gpt-4o",
		"prompt": []any{
			map[string]any{"role": "system", "content": "Be terse."},
		},
		"output_schema": map[string]any{"type": "object"},
	}

	require.Equal(t, "gpt-4o", r.Model())
	require.Len(t, r.Prompt(), 1)
	require.Equal(t, RoleSystem, r.Prompt()[0].Role)
	require.NotNil(t, r.OutputSchema())

	empty := Record{}
	require.Equal(t, "", empty.Model())
	require.Nil(t, empty.Prompt())
	require.Nil(t, empty.OutputSchema())
}

func TestRecord_Clone(t *testing.T) {
	r := Record{"model": "m"}
	c := r.Clone()
	c["model"] = "other"
	require.Equal(t, "m", r["model"])
}

func TestRecord_Params(t *testing.T) {
	temp := 0.3
	r := Record{
		"model":       "gpt-4o",
		"temperature": temp,
		"stream":      true,
		"max_tokens":  "unlimited",
		"custom_flag": "ignored by the typed view",
	}
	p, err := r.Params()
	require.NoError(t, err)
	require.NotNil(t, p.Temperature)
	require.Equal(t, temp, *p.Temperature)
	require.NotNil(t, p.Stream)
	require.True(t, *p.Stream)
	require.Equal(t, "unlimited", p.MaxTokens)
	require.Nil(t, p.TopP, "absent tunables stay nil")
}

func TestFillDefaults(t *testing.T) {
	r := Record{"model": "gpt-4o", "temperature": 0.2}
	filled := FillDefaults(r)

	require.Equal(t, 0.2, filled["temperature"], "explicit values are kept")
	require.Equal(t, 1.0, filled["top_p"])
	require.Equal(t, "auto", filled["tool_choice"])
	require.Equal(t, "unlimited", filled["max_tokens"])
	require.Equal(t, false, filled["stream"])

	_, ok := r["top_p"]
	require.False(t, ok, "input record is not mutated")
}

func TestFillDefaults_NilTreatedAsAbsent(t *testing.T) {
	filled := FillDefaults(Record{"temperature": nil})
	require.Equal(t, 1.0, filled["temperature"])
}

func TestMessage_Text(t *testing.T) {
	tests := []struct {
		name   string
		msg    Message
		expect string
	}{
		{"string content", Message{Role: RoleUser, Content: "hello there"}, "hello there"},
		{
			"array content joins text parts",
			Message{Role: RoleUser, Content: []any{
				map[string]any{"type": "text", "text": "first"},
				map[string]any{"type": "file", "url": "doc.pdf"},
				map[string]any{"type": "text", "text": "second"},
			}},
			"first second",
		},
		{"object with text field", Message{Role: RoleUser, Content: map[string]any{"text": "inner"}}, "inner"},
		{"tool call only", Message{Role: RoleAssistant, Content: map[string]any{"tool": "search"}}, ""},
		{"nil content", Message{Role: RoleSystem}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.msg.Text(); got != tt.expect {
				t.Errorf("Text() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestParseMessages(t *testing.T) {
	t.Run("typed slice passthrough", func(t *testing.T) {
		msgs := []Message{{Role: RoleUser, Content: "hi"}}
		require.Equal(t, msgs, ParseMessages(msgs))
	})

	t.Run("decoded maps", func(t *testing.T) {
		got := ParseMessages([]any{
			map[string]any{"role": "user", "content": "hi"},
			"not a message",
			map[string]any{"content": "missing role"},
		})
		require.Len(t, got, 1)
		require.Equal(t, RoleUser, got[0].Role)
	})

	t.Run("malformed prompt is missing", func(t *testing.T) {
		require.Nil(t, ParseMessages("just a string"))
		require.Nil(t, ParseMessages(nil))
	})
}
