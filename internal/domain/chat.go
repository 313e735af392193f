package domain

// Conversation roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is a single entry of a conversation history.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Turn is a completed request/reply exchange recorded in the transcript.
type Turn struct {
	PK        string
	SK        string
	SessionID string
	Message   string
	Reply     string
	Intent    string
	TTL       int64
}
