package chat

// Message roles, matching the wire format of the completion API.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single role-tagged entry in a conversation. Messages are
// value types and are never mutated after creation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
