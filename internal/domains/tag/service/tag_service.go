package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"articles-backend/internal/domains/tag"
	"articles-backend/internal/shared/utils"
)

type tagService struct {
	repo tag.Repository
}

func NewTagService(repo tag.Repository) tag.Service {
	return &tagService{repo: repo}
}

func (s *tagService) List(ctx context.Context) ([]tag.Tag, error) {
	return s.repo.GetAll(ctx)
}

func (s *tagService) GetByID(ctx context.Context, id uuid.UUID) (*tag.Tag, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *tagService) GetBySlug(ctx context.Context, slug string) (*tag.Tag, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// Create derives the slug from the name. Like article and author
// slugs it is fixed for the lifetime of the tag.
func (s *tagService) Create(ctx context.Context, req *tag.CreateTagRequest) (*tag.Tag, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, tag.ErrInvalidName
	}
	if utf8.RuneCountInString(name) > tag.MaxNameLength {
		return nil, tag.ErrNameTooLong
	}

	if exists, err := s.repo.ExistsByName(ctx, name); err != nil {
		return nil, err
	} else if exists {
		return nil, tag.ErrDuplicateName
	}

	slug := utils.Slugify(name)
	if slug == "" {
		return nil, tag.ErrInvalidSlug
	}
	if exists, err := s.repo.ExistsBySlug(ctx, slug); err != nil {
		return nil, err
	} else if exists {
		return nil, tag.ErrDuplicateSlug
	}

	return s.repo.Create(ctx, &tag.Tag{
		Name: name,
		Slug: slug,
	})
}

func (s *tagService) Update(ctx context.Context, id uuid.UUID, req *tag.UpdateTagRequest) (*tag.Tag, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, tag.ErrInvalidName
		}
		if utf8.RuneCountInString(name) > tag.MaxNameLength {
			return nil, tag.ErrNameTooLong
		}
		if name != t.Name {
			if exists, err := s.repo.ExistsByName(ctx, name); err != nil {
				return nil, err
			} else if exists {
				return nil, tag.ErrDuplicateName
			}
		}
		t.Name = name
	}

	return s.repo.Update(ctx, t)
}

func (s *tagService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
