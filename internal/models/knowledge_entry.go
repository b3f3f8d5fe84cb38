package models

import (
	"time"

	"github.com/google/uuid"
)

// KnowledgeEntry is one stored answer of a knowledge pack.
type KnowledgeEntry struct {
	ID        uuid.UUID `db:"id"`
	Pack      string    `db:"pack"`
	Priority  int       `db:"priority"`
	Position  int       `db:"position"`
	Keywords  []string  `db:"keywords"`
	Response  string    `db:"response"`
	CreatedAt time.Time `db:"created_at"`
}
