package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `db:"id"`
	Username  string    `db:"username"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	FullName  string    `db:"full_name"`
	Bio       string    `db:"bio"`
	Location  string    `db:"location"`
	AvatarURL string    `db:"avatar_url"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Author is the public part of a user shown next to posts and comments.
type Author struct {
	ID        uuid.UUID `db:"id"`
	Username  string    `db:"username"`
	FullName  string    `db:"full_name"`
	AvatarURL string    `db:"avatar_url"`
}
