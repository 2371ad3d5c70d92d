package article

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for articles. Every read returns
// articles with their tag set loaded; the publication predicate is NOT
// applied here — filtering is the service layer's job so the rule lives
// in exactly one place.
type Repository interface {
	// Create inserts the article and attaches its tag set in one
	// transaction.
	// Errors: ErrDuplicateSlug, ErrAuthorNotFound, ErrTagNotFound.
	Create(ctx context.Context, a *Article, tagIDs []uuid.UUID) (*Article, error)

	// GetByID retrieves an article regardless of visibility.
	// Errors: ErrArticleNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Article, error)

	// GetBySlug retrieves an article by its URL slug.
	// Errors: ErrArticleNotFound.
	GetBySlug(ctx context.Context, slug string) (*Article, error)

	// GetAll returns every article, ordered pub_date descending with
	// creation-time tiebreak.
	GetAll(ctx context.Context) ([]Article, error)

	// GetByAuthor returns an author's articles, same ordering.
	GetByAuthor(ctx context.Context, authorID uuid.UUID) ([]Article, error)

	// GetByTag returns articles carrying the tag, same ordering.
	GetByTag(ctx context.Context, tagID uuid.UUID) ([]Article, error)

	// Update persists title/content/pub_date changes. The slug column
	// is never touched here.
	// Errors: ErrArticleNotFound.
	Update(ctx context.Context, a *Article) (*Article, error)

	// SetTags replaces the article's tag set.
	// Errors: ErrArticleNotFound, ErrTagNotFound.
	SetTags(ctx context.Context, articleID uuid.UUID, tagIDs []uuid.UUID) error

	// Delete removes the article (join rows go with it).
	// Errors: ErrArticleNotFound.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsBySlug checks slug uniqueness before insert.
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}
