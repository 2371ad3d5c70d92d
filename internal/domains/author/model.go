package author

import (
	"time"

	"github.com/google/uuid"
)

const (
	MaxUserNameLength = 150
	MinUserNameLength = 2
	MinPasswordLength = 8
)

// Author writes articles and doubles as the account that signs in to
// manage them. PasswordHash never leaves the process.
type Author struct {
	ID           uuid.UUID `json:"id"`
	UserName     string    `json:"user_name"`
	Email        *string   `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Slug         string    `json:"slug"`
	Avatar       string    `json:"avatar"`
	JoinedAt     time.Time `json:"joined_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasEmail reports whether the author shared an email address. The
// presentation layer shows the field only when present.
func (a *Author) HasEmail() bool {
	return a.Email != nil && *a.Email != ""
}
