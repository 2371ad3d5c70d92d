package tag

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	List(ctx context.Context) ([]Tag, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Tag, error)
	GetBySlug(ctx context.Context, slug string) (*Tag, error)
	Create(ctx context.Context, req *CreateTagRequest) (*Tag, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateTagRequest) (*Tag, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
