package version

import "strings"

// Role identifies who a prompt message speaks as.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleDeveloper Role = "developer"
	RoleTool      Role = "tool"
)

// Message is one prompt entry. Content is a plain string, a sequence of
// content parts, or a structured object; only parts resolvable to plain
// text participate in commonality extraction, while non-text parts (tool
// calls, files) keep their position.
type Message struct {
	Role    Role `json:"role" yaml:"role"`
	Content any  `json:"content,omitempty" yaml:"content,omitempty"`
}

// Text returns the message's extractable plain text: string content
// verbatim, the text sub-parts of array content joined with spaces, or a
// structured object's "text" field. Everything else resolves to "".
func (m Message) Text() string {
	return contentText(m.Content)
}

func contentText(content any) string {
	switch c := content.(type) {
	case string:
		return c
	case []any:
		var parts []string
		for _, p := range c {
			if t := partText(p); t != "" {
				parts = append(parts, t)
			}
		}
		return strings.Join(parts, " ")
	case map[string]any:
		if t, ok := c["text"].(string); ok {
			return t
		}
	}
	return ""
}

func partText(part any) string {
	switch p := part.(type) {
	case string:
		return p
	case map[string]any:
		if t, ok := p["text"].(string); ok {
			return t
		}
	}
	return ""
}

// ParseMessages converts a decoded prompt value into a message sequence.
// Entries that are not message-shaped are skipped; a malformed prompt is
// treated as missing, never as an error.
func ParseMessages(v any) []Message {
	switch prompt := v.(type) {
	case []Message:
		return prompt
	case []any:
		var out []Message
		for _, entry := range prompt {
			m, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			role, _ := m["role"].(string)
			if role == "" {
				continue
			}
			out = append(out, Message{Role: Role(role), Content: m["content"]})
		}
		return out
	default:
		return nil
	}
}
