package domain

// ChatRole identifies who authored a chat message.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
	ChatRoleSystem    ChatRole = "system"
)

// IsValid checks if the role is one of the known speakers.
func (r ChatRole) IsValid() bool {
	switch r {
	case ChatRoleUser, ChatRoleAssistant, ChatRoleSystem:
		return true
	}
	return false
}

// ChatMessage is one turn of a documentation chat transcript.
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// Validate checks the message has a known role and some content.
func (m ChatMessage) Validate() error {
	if !m.Role.IsValid() {
		return ErrInvalidChatRole
	}
	if m.Content == "" {
		return ErrMissingRequiredField
	}
	return nil
}
