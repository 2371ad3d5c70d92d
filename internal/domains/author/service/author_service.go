package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"articles-backend/internal/domains/author"
	"articles-backend/internal/shared/utils"
)

type authorService struct {
	repo author.Repository
	now  func() time.Time
}

func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *authorService) List(ctx context.Context) ([]author.Author, error) {
	return s.repo.GetAll(ctx)
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) GetBySlug(ctx context.Context, slug string) (*author.Author, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// Create registers a new author. The slug, avatar path and join date
// are derived server side; callers only supply credentials and an
// optional avatar filename.
func (s *authorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	userName := strings.TrimSpace(req.UserName)
	if utf8.RuneCountInString(userName) < author.MinUserNameLength {
		return nil, author.ErrInvalidUserName
	}
	if utf8.RuneCountInString(userName) > author.MaxUserNameLength {
		return nil, author.ErrUserNameTooLong
	}
	if utf8.RuneCountInString(req.Password) < author.MinPasswordLength {
		return nil, author.ErrPasswordTooShort
	}

	if exists, err := s.repo.ExistsByUserName(ctx, userName); err != nil {
		return nil, err
	} else if exists {
		return nil, author.ErrDuplicateUserName
	}

	slug := utils.Slugify(userName)
	if slug == "" {
		return nil, author.ErrInvalidSlug
	}
	if exists, err := s.repo.ExistsBySlug(ctx, slug); err != nil {
		return nil, err
	} else if exists {
		return nil, author.ErrDuplicateSlug
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	avatar := utils.DefaultAvatar
	if req.AvatarFilename != nil && *req.AvatarFilename != "" {
		avatar = utils.AvatarUploadPath(userName, *req.AvatarFilename)
	}

	a := &author.Author{
		UserName:     userName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Slug:         slug,
		Avatar:       avatar,
		JoinedAt:     s.now(),
	}

	return s.repo.Create(ctx, a)
}

// Update applies partial changes. The slug is fixed at creation time
// and never regenerated, so renaming an author does not break links.
func (s *authorService) Update(ctx context.Context, id uuid.UUID, req *author.UpdateAuthorRequest) (*author.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.UserName != nil {
		userName := strings.TrimSpace(*req.UserName)
		if utf8.RuneCountInString(userName) < author.MinUserNameLength {
			return nil, author.ErrInvalidUserName
		}
		if utf8.RuneCountInString(userName) > author.MaxUserNameLength {
			return nil, author.ErrUserNameTooLong
		}
		if userName != a.UserName {
			if exists, err := s.repo.ExistsByUserName(ctx, userName); err != nil {
				return nil, err
			} else if exists {
				return nil, author.ErrDuplicateUserName
			}
		}
		a.UserName = userName
	}
	if req.Email != nil {
		a.Email = req.Email
	}
	if req.AvatarFilename != nil {
		if *req.AvatarFilename == "" {
			a.Avatar = utils.DefaultAvatar
		} else {
			a.Avatar = utils.AvatarUploadPath(a.UserName, *req.AvatarFilename)
		}
	}

	return s.repo.Update(ctx, a)
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Authenticate verifies a user name and password pair. Unknown user
// names and wrong passwords both report ErrInvalidCredentials so the
// response does not leak which part was wrong.
func (s *authorService) Authenticate(ctx context.Context, userName, password string) (*author.Author, error) {
	a, err := s.repo.GetByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			return nil, author.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return nil, author.ErrInvalidCredentials
	}

	return a, nil
}
