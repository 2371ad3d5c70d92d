package author

import (
	"context"

	"github.com/google/uuid"
)

// Service is the author business-logic surface.
type Service interface {
	// List returns all authors, alphabetical by user name.
	List(ctx context.Context) ([]Author, error)

	// GetByID retrieves one author.
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// GetBySlug retrieves one author by URL slug.
	GetBySlug(ctx context.Context, slug string) (*Author, error)

	// Create builds the author with defaulted joined_at/slug/avatar,
	// hashes the password, validates uniqueness and persists.
	Create(ctx context.Context, req *CreateAuthorRequest) (*Author, error)

	// Update applies a partial edit. The slug is never regenerated.
	Update(ctx context.Context, id uuid.UUID, req *UpdateAuthorRequest) (*Author, error)

	// Delete removes the author and, by cascade, every article they own.
	Delete(ctx context.Context, id uuid.UUID) error

	// Authenticate verifies credentials and returns the author.
	// Errors: ErrInvalidCredentials on any mismatch.
	Authenticate(ctx context.Context, userName, password string) (*Author, error)
}
