package article

import (
	"context"

	"github.com/google/uuid"
)

// Service is the read/write surface consumed by HTTP handlers. All read
// methods apply the shared publication predicate: a draft or future-dated
// article is unreachable through any of them, including direct lookup,
// which reports ErrArticleNotFound instead of partial content.
type Service interface {
	// List returns all currently published articles, newest first.
	List(ctx context.Context) ([]Article, error)

	// GetByID returns the article only if it is published.
	GetByID(ctx context.Context, id uuid.UUID) (*Article, error)

	// GetBySlug returns the article only if it is published.
	GetBySlug(ctx context.Context, slug string) (*Article, error)

	// ByAuthor returns the author's published articles, newest first.
	ByAuthor(ctx context.Context, authorID uuid.UUID) ([]Article, error)

	// ByTag returns published articles carrying the tag, newest first.
	ByTag(ctx context.Context, tagID uuid.UUID) ([]Article, error)

	// Create builds the article with defaulted pub_date/slug and
	// validated uniqueness, then persists it with its tag set.
	Create(ctx context.Context, req *CreateArticleRequest) (*Article, error)

	// Update applies a partial edit. The slug is never regenerated.
	Update(ctx context.Context, id uuid.UUID, req *UpdateArticleRequest) (*Article, error)

	// Delete removes the article.
	Delete(ctx context.Context, id uuid.UUID) error
}
