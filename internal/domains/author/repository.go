package author

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for authors.
type Repository interface {
	// Create inserts a new author.
	// Errors: ErrDuplicateUserName, ErrDuplicateSlug.
	Create(ctx context.Context, a *Author) (*Author, error)

	// GetByID retrieves an author by id.
	// Errors: ErrAuthorNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// GetBySlug retrieves an author by URL slug.
	// Errors: ErrAuthorNotFound.
	GetBySlug(ctx context.Context, slug string) (*Author, error)

	// GetByUserName retrieves an author by user name, for sign-in.
	// Errors: ErrAuthorNotFound.
	GetByUserName(ctx context.Context, userName string) (*Author, error)

	// GetAll returns every author, ascending by user name.
	GetAll(ctx context.Context) ([]Author, error)

	// Update persists user name, email and avatar changes. The slug
	// column is never touched.
	// Errors: ErrAuthorNotFound, ErrDuplicateUserName.
	Update(ctx context.Context, a *Author) (*Author, error)

	// Delete removes the author. The database cascades the delete to
	// every article the author owns.
	// Errors: ErrAuthorNotFound.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByUserName checks user name uniqueness before insert.
	ExistsByUserName(ctx context.Context, userName string) (bool, error)

	// ExistsBySlug checks slug uniqueness before insert.
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}
