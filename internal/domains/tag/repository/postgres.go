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

	"articles-backend/internal/domains/tag"
	"articles-backend/pkg/cache"
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) tag.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	tagCacheKeyPrefix = "tag:"
	tagSlugKeyPrefix  = "tag:slug:"
	cacheTTL          = 15 * time.Minute
)

const tagColumns = `id, name, slug, created_at, updated_at`

func scanTag(row pgx.Row, t *tag.Tag) error {
	return row.Scan(
		&t.ID,
		&t.Name,
		&t.Slug,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
}

func (r *postgresRepository) Create(ctx context.Context, t *tag.Tag) (*tag.Tag, error) {
	query := `
        INSERT INTO tags (name, slug)
        VALUES ($1, $2)
        RETURNING ` + tagColumns

	var created tag.Tag
	err := scanTag(r.pool.QueryRow(ctx, query, t.Name, t.Slug), &created)
	if err != nil {
		return nil, mapWriteError(err, "failed to create tag")
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*tag.Tag, error) {
	cacheKey := tagCacheKeyPrefix + id.String()

	var t tag.Tag
	if found, err := r.cache.Get(ctx, cacheKey, &t); err == nil && found {
		return &t, nil
	}

	query := `SELECT ` + tagColumns + ` FROM tags WHERE id = $1`
	err := scanTag(r.pool.QueryRow(ctx, query, id), &t)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tag.ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to get tag by id: %w", err)
	}

	r.storeInCache(ctx, &t)
	return &t, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*tag.Tag, error) {
	cacheKey := tagSlugKeyPrefix + slug

	var t tag.Tag
	if found, err := r.cache.Get(ctx, cacheKey, &t); err == nil && found {
		return &t, nil
	}

	query := `SELECT ` + tagColumns + ` FROM tags WHERE slug = $1`
	err := scanTag(r.pool.QueryRow(ctx, query, slug), &t)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tag.ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to get tag by slug: %w", err)
	}

	r.storeInCache(ctx, &t)
	return &t, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]tag.Tag, error) {
	query := `
        SELECT ` + tagColumns + `
        FROM tags
        ORDER BY name ASC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer rows.Close()

	var tags []tag.Tag
	for rows.Next() {
		var t tag.Tag
		if err := scanTag(rows, &t); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tags: %w", err)
	}

	return tags, nil
}

func (r *postgresRepository) Update(ctx context.Context, t *tag.Tag) (*tag.Tag, error) {
	query := `
        UPDATE tags
        SET name = $1, updated_at = NOW()
        WHERE id = $2
        RETURNING ` + tagColumns

	var updated tag.Tag
	err := scanTag(r.pool.QueryRow(ctx, query, t.Name, t.ID), &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tag.ErrTagNotFound
		}
		return nil, mapWriteError(err, "failed to update tag")
	}

	r.invalidateTagCache(ctx, updated.ID, updated.Slug)
	return &updated, nil
}

// Delete removes the tag row. The article_tags FK cascades, so join
// rows vanish while the articles stay.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var slug string
	err := r.pool.QueryRow(ctx, `SELECT slug FROM tags WHERE id = $1`, id).Scan(&slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tag.ErrTagNotFound
		}
		return fmt.Errorf("failed to load tag slug for delete: %w", err)
	}

	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return tag.ErrTagNotFound
	}

	r.invalidateTagCache(ctx, id, slug)
	return nil
}

func (r *postgresRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM tags WHERE name = $1)`, name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check name existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM tags WHERE slug = $1)`, slug,
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
			if strings.Contains(pgErr.Message, "name") {
				return tag.ErrDuplicateName
			}
			if strings.Contains(pgErr.Message, "slug") {
				return tag.ErrDuplicateSlug
			}
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func (r *postgresRepository) storeInCache(ctx context.Context, t *tag.Tag) {
	if data, err := json.Marshal(t); err == nil {
		r.cache.Set(ctx, tagCacheKeyPrefix+t.ID.String(), string(data), cacheTTL)
		r.cache.Set(ctx, tagSlugKeyPrefix+t.Slug, string(data), cacheTTL)
	}
}

func (r *postgresRepository) invalidateTagCache(ctx context.Context, id uuid.UUID, slug string) {
	r.cache.Delete(ctx, tagCacheKeyPrefix+id.String(), tagSlugKeyPrefix+slug)
}
