package models

import (
	"time"

	"github.com/google/uuid"
)

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

type ChatMessage struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Role      ChatRole  `db:"role"`
	Content   string    `db:"content"`
	Source    string    `db:"source"` // empty for user turns
	CreatedAt time.Time `db:"created_at"`
}

// ChatTurn is one prior message handed to an LLM as context.
type ChatTurn struct {
	Role    ChatRole
	Content string
}
