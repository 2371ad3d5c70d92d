package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"articles-backend/internal/domains/author"
	"articles-backend/pkg/cache"
)

// postgresRepository implements author.Repository on pgxpool with a
// Redis read-through cache for single-entity lookups.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) author.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	authorCacheKeyPrefix = "author:"
	authorSlugKeyPrefix  = "author:slug:"
	cacheTTL             = 15 * time.Minute
)

const authorColumns = `id, user_name, email, password_hash, slug, avatar, joined_at, created_at, updated_at`

func scanAuthor(row pgx.Row, a *author.Author) error {
	return row.Scan(
		&a.ID,
		&a.UserName,
		&a.Email,
		&a.PasswordHash,
		&a.Slug,
		&a.Avatar,
		&a.JoinedAt,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
}

func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        INSERT INTO authors (user_name, email, password_hash, slug, avatar, joined_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + authorColumns

	var created author.Author
	err := scanAuthor(r.pool.QueryRow(
		ctx,
		query,
		a.UserName,
		a.Email,
		a.PasswordHash,
		a.Slug,
		a.Avatar,
		a.JoinedAt,
	), &created)

	if err != nil {
		return nil, mapWriteError(err, "failed to create author")
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	cacheKey := authorCacheKeyPrefix + id.String()

	var a author.Author
	if found, err := r.cache.Get(ctx, cacheKey, &a); err == nil && found {
		return &a, nil
	}

	query := `SELECT ` + authorColumns + ` FROM authors WHERE id = $1`
	err := scanAuthor(r.pool.QueryRow(ctx, query, id), &a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	r.storeInCache(ctx, &a)
	return &a, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*author.Author, error) {
	cacheKey := authorSlugKeyPrefix + slug

	var a author.Author
	if found, err := r.cache.Get(ctx, cacheKey, &a); err == nil && found {
		return &a, nil
	}

	query := `SELECT ` + authorColumns + ` FROM authors WHERE slug = $1`
	err := scanAuthor(r.pool.QueryRow(ctx, query, slug), &a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by slug: %w", err)
	}

	r.storeInCache(ctx, &a)
	return &a, nil
}

// GetByUserName is the sign-in lookup. Never cached: it carries the
// password hash and must always reflect the live row.
func (r *postgresRepository) GetByUserName(ctx context.Context, userName string) (*author.Author, error) {
	query := `SELECT ` + authorColumns + ` FROM authors WHERE user_name = $1`

	var a author.Author
	err := scanAuthor(r.pool.QueryRow(ctx, query, userName), &a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by user name: %w", err)
	}

	return &a, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]author.Author, error) {
	query := `
        SELECT ` + authorColumns + `
        FROM authors
        ORDER BY user_name ASC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	var authors []author.Author
	for rows.Next() {
		var a author.Author
		if err := scanAuthor(rows, &a); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        UPDATE authors
        SET user_name = $1, email = $2, avatar = $3, updated_at = NOW()
        WHERE id = $4
        RETURNING ` + authorColumns

	var updated author.Author
	err := scanAuthor(r.pool.QueryRow(
		ctx,
		query,
		a.UserName,
		a.Email,
		a.Avatar,
		a.ID,
	), &updated)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, mapWriteError(err, "failed to update author")
	}

	r.invalidateAuthorCache(ctx, updated.ID, updated.Slug)
	return &updated, nil
}

// Delete removes the author row; the articles FK is declared ON DELETE
// CASCADE, so the author's articles disappear in the same statement.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var slug string
	err := r.pool.QueryRow(ctx, `SELECT slug FROM authors WHERE id = $1`, id).Scan(&slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return author.ErrAuthorNotFound
		}
		return fmt.Errorf("failed to load author slug for delete: %w", err)
	}

	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}

	r.invalidateAuthorCache(ctx, id, slug)
	return nil
}

func (r *postgresRepository) ExistsByUserName(ctx context.Context, userName string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM authors WHERE user_name = $1)`, userName,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user name existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM authors WHERE slug = $1)`, slug,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}
	return exists, nil
}

func mapWriteError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" { // unique_violation
			if strings.Contains(pgErr.Message, "user_name") {
				return author.ErrDuplicateUserName
			}
			if strings.Contains(pgErr.Message, "slug") {
				return author.ErrDuplicateSlug
			}
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func (r *postgresRepository) storeInCache(ctx context.Context, a *author.Author) {
	if data, err := json.Marshal(a); err == nil {
		r.cache.Set(ctx, authorCacheKeyPrefix+a.ID.String(), string(data), cacheTTL)
		r.cache.Set(ctx, authorSlugKeyPrefix+a.Slug, string(data), cacheTTL)
	}
}

func (r *postgresRepository) invalidateAuthorCache(ctx context.Context, id uuid.UUID, slug string) {
	r.cache.Delete(ctx, authorCacheKeyPrefix+id.String(), authorSlugKeyPrefix+slug)
}
