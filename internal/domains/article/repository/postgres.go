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

	"articles-backend/internal/domains/article"
	"articles-backend/pkg/cache"
)

// postgresRepository implements article.Repository on pgxpool with a
// Redis read-through cache for single-entity lookups. List queries are
// never cached: their results depend on the current instant.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) article.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	articleCacheKeyPrefix = "article:"
	articleSlugKeyPrefix  = "article:slug:"
	cacheTTL              = 15 * time.Minute
)

const articleColumns = `id, title, slug, author_id, content, pub_date, created_at, updated_at`

func scanArticle(row pgx.Row, a *article.Article) error {
	return row.Scan(
		&a.ID,
		&a.Title,
		&a.Slug,
		&a.AuthorID,
		&a.Content,
		&a.PubDate,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
}

// Create inserts the article and its tag set in a single transaction so
// a failed tag attach never leaves a half-created article behind.
func (r *postgresRepository) Create(ctx context.Context, a *article.Article, tagIDs []uuid.UUID) (*article.Article, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
        INSERT INTO articles (title, slug, author_id, content, pub_date)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + articleColumns

	var created article.Article
	err = scanArticle(tx.QueryRow(
		ctx,
		query,
		a.Title,
		a.Slug,
		a.AuthorID,
		a.Content,
		a.PubDate,
	), &created)

	if err != nil {
		return nil, mapWriteError(err, "failed to create article")
	}

	for _, tagID := range tagIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO article_tags (article_id, tag_id) VALUES ($1, $2)`,
			created.ID, tagID,
		)
		if err != nil {
			return nil, mapWriteError(err, "failed to attach tag")
		}
	}

	created.Tags, err = loadTags(ctx, tx, created.ID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*article.Article, error) {
	cacheKey := articleCacheKeyPrefix + id.String()

	var a article.Article
	if found, err := r.cache.Get(ctx, cacheKey, &a); err == nil && found {
		return &a, nil
	}

	query := `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`
	err := scanArticle(r.pool.QueryRow(ctx, query, id), &a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, article.ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article by id: %w", err)
	}

	a.Tags, err = loadTags(ctx, r.pool, a.ID)
	if err != nil {
		return nil, err
	}

	r.storeInCache(ctx, &a)
	return &a, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*article.Article, error) {
	cacheKey := articleSlugKeyPrefix + slug

	var a article.Article
	if found, err := r.cache.Get(ctx, cacheKey, &a); err == nil && found {
		return &a, nil
	}

	query := `SELECT ` + articleColumns + ` FROM articles WHERE slug = $1`
	err := scanArticle(r.pool.QueryRow(ctx, query, slug), &a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, article.ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article by slug: %w", err)
	}

	a.Tags, err = loadTags(ctx, r.pool, a.ID)
	if err != nil {
		return nil, err
	}

	r.storeInCache(ctx, &a)
	return &a, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]article.Article, error) {
	query := `
        SELECT ` + articleColumns + `
        FROM articles
        ORDER BY pub_date DESC, created_at DESC
    `
	return r.queryArticles(ctx, query)
}

func (r *postgresRepository) GetByAuthor(ctx context.Context, authorID uuid.UUID) ([]article.Article, error) {
	query := `
        SELECT ` + articleColumns + `
        FROM articles
        WHERE author_id = $1
        ORDER BY pub_date DESC, created_at DESC
    `
	return r.queryArticles(ctx, query, authorID)
}

func (r *postgresRepository) GetByTag(ctx context.Context, tagID uuid.UUID) ([]article.Article, error) {
	query := `
        SELECT ` + articleColumns + `
        FROM articles a
        JOIN article_tags at ON at.article_id = a.id
        WHERE at.tag_id = $1
        ORDER BY a.pub_date DESC, a.created_at DESC
    `
	return r.queryArticles(ctx, query, tagID)
}

// Update persists title, content and pub_date. The slug column is
// deliberately absent from the SET list: slugs are stable for life.
func (r *postgresRepository) Update(ctx context.Context, a *article.Article) (*article.Article, error) {
	query := `
        UPDATE articles
        SET title = $1, content = $2, pub_date = $3, updated_at = NOW()
        WHERE id = $4
        RETURNING ` + articleColumns

	var updated article.Article
	err := scanArticle(r.pool.QueryRow(
		ctx,
		query,
		a.Title,
		a.Content,
		a.PubDate,
		a.ID,
	), &updated)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, article.ErrArticleNotFound
		}
		return nil, mapWriteError(err, "failed to update article")
	}

	updated.Tags, err = loadTags(ctx, r.pool, updated.ID)
	if err != nil {
		return nil, err
	}

	r.invalidateArticleCache(ctx, updated.ID, updated.Slug)
	return &updated, nil
}

// SetTags replaces the tag set: delete every join row, insert the new
// ones, all in one transaction.
func (r *postgresRepository) SetTags(ctx context.Context, articleID uuid.UUID, tagIDs []uuid.UUID) error {
	var slug string
	err := r.pool.QueryRow(ctx, `SELECT slug FROM articles WHERE id = $1`, articleID).Scan(&slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return article.ErrArticleNotFound
		}
		return fmt.Errorf("failed to load article: %w", err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM article_tags WHERE article_id = $1`, articleID); err != nil {
		return fmt.Errorf("failed to clear tag set: %w", err)
	}

	for _, tagID := range tagIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO article_tags (article_id, tag_id) VALUES ($1, $2)`,
			articleID, tagID,
		)
		if err != nil {
			return mapWriteError(err, "failed to attach tag")
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.invalidateArticleCache(ctx, articleID, slug)
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var slug string
	err := r.pool.QueryRow(ctx, `SELECT slug FROM articles WHERE id = $1`, id).Scan(&slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return article.ErrArticleNotFound
		}
		return fmt.Errorf("failed to load article slug for delete: %w", err)
	}

	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return article.ErrArticleNotFound
	}

	r.invalidateArticleCache(ctx, id, slug)
	return nil
}

func (r *postgresRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM articles WHERE slug = $1)`, slug,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}
	return exists, nil
}

// queryArticles runs a multi-row article query and bulk-loads the tag
// sets of the whole result in one extra round trip.
func (r *postgresRepository) queryArticles(ctx context.Context, query string, args ...interface{}) ([]article.Article, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	defer rows.Close()

	var articles []article.Article
	for rows.Next() {
		var a article.Article
		if err := scanArticle(rows, &a); err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating articles: %w", err)
	}

	if err := r.attachTags(ctx, articles); err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *postgresRepository) attachTags(ctx context.Context, articles []article.Article) error {
	if len(articles) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(articles))
	index := make(map[uuid.UUID]int, len(articles))
	for i := range articles {
		ids[i] = articles[i].ID
		index[articles[i].ID] = i
		articles[i].Tags = nil
	}

	rows, err := r.pool.Query(ctx, `
        SELECT at.article_id, t.id, t.name, t.slug
        FROM article_tags at
        JOIN tags t ON t.id = at.tag_id
        WHERE at.article_id = ANY($1)
        ORDER BY t.name ASC
    `, ids)
	if err != nil {
		return fmt.Errorf("failed to query article tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var articleID uuid.UUID
		var ref article.TagRef
		if err := rows.Scan(&articleID, &ref.ID, &ref.Name, &ref.Slug); err != nil {
			return fmt.Errorf("failed to scan article tag: %w", err)
		}
		if i, ok := index[articleID]; ok {
			articles[i].Tags = append(articles[i].Tags, ref)
		}
	}
	return rows.Err()
}

// querier covers pgxpool.Pool and pgx.Tx for tag loading.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func loadTags(ctx context.Context, q querier, articleID uuid.UUID) ([]article.TagRef, error) {
	rows, err := q.Query(ctx, `
        SELECT t.id, t.name, t.slug
        FROM article_tags at
        JOIN tags t ON t.id = at.tag_id
        WHERE at.article_id = $1
        ORDER BY t.name ASC
    `, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load article tags: %w", err)
	}
	defer rows.Close()

	var tags []article.TagRef
	for rows.Next() {
		var ref article.TagRef
		if err := rows.Scan(&ref.ID, &ref.Name, &ref.Slug); err != nil {
			return nil, fmt.Errorf("failed to scan article tag: %w", err)
		}
		tags = append(tags, ref)
	}
	return tags, rows.Err()
}

// mapWriteError converts Postgres constraint violations into domain
// errors the service layer can act on.
func mapWriteError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			if strings.Contains(pgErr.Message, "slug") {
				return article.ErrDuplicateSlug
			}
		case "23503": // foreign_key_violation
			if strings.Contains(pgErr.Message, "author") {
				return article.ErrAuthorNotFound
			}
			if strings.Contains(pgErr.Message, "tag") {
				return article.ErrTagNotFound
			}
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func (r *postgresRepository) storeInCache(ctx context.Context, a *article.Article) {
	if data, err := json.Marshal(a); err == nil {
		r.cache.Set(ctx, articleCacheKeyPrefix+a.ID.String(), string(data), cacheTTL)
		r.cache.Set(ctx, articleSlugKeyPrefix+a.Slug, string(data), cacheTTL)
	}
}

func (r *postgresRepository) invalidateArticleCache(ctx context.Context, id uuid.UUID, slug string) {
	r.cache.Delete(ctx, articleCacheKeyPrefix+id.String(), articleSlugKeyPrefix+slug)
}
