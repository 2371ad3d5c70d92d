package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"articles-backend/internal/domains/article"
	"articles-backend/internal/shared/utils"
)

// articleService implements article.Service. Visibility filtering and
// ordering happen here, in memory, over data the repository already
// fetched; the repository never applies the publication predicate.
type articleService struct {
	repo article.Repository
	now  func() time.Time
}

func NewArticleService(repo article.Repository) article.Service {
	return &articleService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *articleService) List(ctx context.Context) ([]article.Article, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return article.VisibleArticles(all, s.now()), nil
}

// GetByID applies the same publication predicate as the listings: a
// draft or future-dated article is reported as not found, so direct
// lookup can never leak what a listing hides.
func (s *articleService) GetByID(ctx context.Context, id uuid.UUID) (*article.Article, error) {
	if id == uuid.Nil {
		return nil, article.ErrArticleNotFound
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !a.Visible(s.now()) {
		return nil, article.ErrArticleNotFound
	}
	return a, nil
}

func (s *articleService) GetBySlug(ctx context.Context, slug string) (*article.Article, error) {
	slug = strings.TrimSpace(strings.ToLower(slug))
	if slug == "" {
		return nil, article.ErrArticleNotFound
	}

	a, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !a.Visible(s.now()) {
		return nil, article.ErrArticleNotFound
	}
	return a, nil
}

func (s *articleService) ByAuthor(ctx context.Context, authorID uuid.UUID) ([]article.Article, error) {
	if authorID == uuid.Nil {
		return nil, article.ErrAuthorNotFound
	}

	all, err := s.repo.GetByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	return article.VisibleArticles(all, s.now()), nil
}

func (s *articleService) ByTag(ctx context.Context, tagID uuid.UUID) ([]article.Article, error) {
	if tagID == uuid.Nil {
		return nil, article.ErrTagNotFound
	}

	all, err := s.repo.GetByTag(ctx, tagID)
	if err != nil {
		return nil, err
	}
	return article.VisibleArticles(all, s.now()), nil
}

// Create computes the defaulted fields exactly once: pub_date falls back
// to the current time, the slug to the slugified title. Later edits
// never recompute them.
func (s *articleService) Create(ctx context.Context, req *article.CreateArticleRequest) (*article.Article, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	authorID, err := uuid.Parse(req.AuthorID)
	if err != nil {
		return nil, article.ErrAuthorNotFound
	}

	title := strings.TrimSpace(req.Title)
	if utf8.RuneCountInString(title) > article.MaxTitleLength {
		return nil, article.ErrTitleTooLong
	}

	pubDate := s.now()
	if req.PubDate != nil {
		pubDate = *req.PubDate
	}

	slug := utils.Slugify(title)
	if slug == "" {
		// Untitled drafts still need a unique slug; derive one from a
		// fresh id so two drafts never collide.
		slug = "untitled-" + uuid.NewString()[:8]
	}

	exists, err := s.repo.ExistsBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug uniqueness: %w", err)
	}
	if exists {
		return nil, article.ErrDuplicateSlug
	}

	tagIDs, err := parseTagIDs(req.TagIDs)
	if err != nil {
		return nil, err
	}

	newArticle := &article.Article{
		Title:    title,
		Slug:     slug,
		AuthorID: authorID,
		Content:  req.Content,
		PubDate:  pubDate,
	}

	created, err := s.repo.Create(ctx, newArticle, tagIDs)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update applies a partial edit. The slug stays untouched even when the
// title changes: published URLs must not break.
func (s *articleService) Update(ctx context.Context, id uuid.UUID, req *article.UpdateArticleRequest) (*article.Article, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if utf8.RuneCountInString(title) > article.MaxTitleLength {
			return nil, article.ErrTitleTooLong
		}
		updated.Title = title
	}
	if req.Content != nil {
		updated.Content = *req.Content
	}
	if req.PubDate != nil {
		updated.PubDate = *req.PubDate
	}

	result, err := s.repo.Update(ctx, &updated)
	if err != nil {
		return nil, err
	}

	if req.TagIDs != nil {
		tagIDs, err := parseTagIDs(*req.TagIDs)
		if err != nil {
			return nil, err
		}
		if err := s.repo.SetTags(ctx, id, tagIDs); err != nil {
			return nil, err
		}
		// Reload so the returned article carries the new tag set.
		return s.repo.GetByID(ctx, id)
	}

	return result, nil
}

func (s *articleService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return article.ErrArticleNotFound
	}
	return s.repo.Delete(ctx, id)
}

func parseTagIDs(raw []string) ([]uuid.UUID, error) {
	tagIDs := make([]uuid.UUID, 0, len(raw))
	for _, idStr := range raw {
		tagID, err := uuid.Parse(idStr)
		if err != nil {
			return nil, article.ErrTagNotFound
		}
		tagIDs = append(tagIDs, tagID)
	}
	return tagIDs, nil
}
