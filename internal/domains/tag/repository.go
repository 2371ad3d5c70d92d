package tag

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence contract for tags. GetAll returns tags
// ordered alphabetically by name.
type Repository interface {
	Create(ctx context.Context, t *Tag) (*Tag, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Tag, error)
	GetBySlug(ctx context.Context, slug string) (*Tag, error)
	GetAll(ctx context.Context) ([]Tag, error)
	Update(ctx context.Context, t *Tag) (*Tag, error)

	// Delete removes the tag. Join rows pointing at it go with it,
	// but the tagged articles themselves are untouched.
	Delete(ctx context.Context, id uuid.UUID) error

	ExistsByName(ctx context.Context, name string) (bool, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}
