package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"articles-backend/internal/domains/author"
)

type fakeRepo struct {
	authors map[uuid.UUID]*author.Author
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{authors: make(map[uuid.UUID]*author.Author)}
}

func (r *fakeRepo) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	stored := *a
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.authors[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	a, ok := r.authors[id]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	out := *a
	return &out, nil
}

func (r *fakeRepo) GetBySlug(ctx context.Context, slug string) (*author.Author, error) {
	for _, a := range r.authors {
		if a.Slug == slug {
			out := *a
			return &out, nil
		}
	}
	return nil, author.ErrAuthorNotFound
}

func (r *fakeRepo) GetByUserName(ctx context.Context, userName string) (*author.Author, error) {
	for _, a := range r.authors {
		if a.UserName == userName {
			out := *a
			return &out, nil
		}
	}
	return nil, author.ErrAuthorNotFound
}

func (r *fakeRepo) GetAll(ctx context.Context) ([]author.Author, error) {
	var out []author.Author
	for _, a := range r.authors {
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeRepo) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	stored, ok := r.authors[a.ID]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	stored.UserName = a.UserName
	stored.Email = a.Email
	stored.Avatar = a.Avatar
	stored.UpdatedAt = time.Now()
	out := *stored
	return &out, nil
}

func (r *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.authors[id]; !ok {
		return author.ErrAuthorNotFound
	}
	delete(r.authors, id)
	return nil
}

func (r *fakeRepo) ExistsByUserName(ctx context.Context, userName string) (bool, error) {
	for _, a := range r.authors {
		if a.UserName == userName {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	for _, a := range r.authors {
		if a.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func newTestService(repo *fakeRepo, now time.Time) author.Service {
	svc := NewAuthorService(repo).(*authorService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestCreateAppliesDefaults(t *testing.T) {
	repo := newFakeRepo()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(repo, now)

	created, err := svc.Create(context.Background(), &author.CreateAuthorRequest{
		UserName: "Jane Doe",
		Password: "correct horse",
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", created.UserName)
	assert.Equal(t, "jane-doe", created.Slug)
	assert.Equal(t, "static/library/author/default.png", created.Avatar)
	assert.Equal(t, now, created.JoinedAt)
	assert.NotEmpty(t, created.PasswordHash)
	assert.NotEqual(t, "correct horse", created.PasswordHash)
}

func TestCreateUsesUploadedAvatarPath(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, time.Now())

	filename := "avatar.png"
	created, err := svc.Create(context.Background(), &author.CreateAuthorRequest{
		UserName:       "author",
		Password:       "password123",
		AvatarFilename: &filename,
	})
	require.NoError(t, err)
	assert.Equal(t, "static/library/author/author/avatar.png", created.Avatar)
}

func TestCreateTrimsUserName(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, time.Now())

	created, err := svc.Create(context.Background(), &author.CreateAuthorRequest{
		UserName: "  padded name  ",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "padded name", created.UserName)
	assert.Equal(t, "padded-name", created.Slug)
}

func TestCreateUserNameLengthCountsRunes(t *testing.T) {
	svc := newTestService(newFakeRepo(), time.Now())
	ctx := context.Background()

	// 150 two-byte runes exceeds 150 bytes but not 150 characters.
	created, err := svc.Create(ctx, &author.CreateAuthorRequest{
		UserName: strings.Repeat("é", author.MaxUserNameLength),
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("e", author.MaxUserNameLength), created.Slug)

	_, err = svc.Create(ctx, &author.CreateAuthorRequest{
		UserName: "other" + strings.Repeat("é", author.MaxUserNameLength),
		Password: "password123",
	})
	assert.Error(t, err)
}

func TestCreateRejectsDuplicateUserName(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, time.Now())

	_, err := svc.Create(context.Background(), &author.CreateAuthorRequest{
		UserName: "writer",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &author.CreateAuthorRequest{
		UserName: "writer",
		Password: "password123",
	})
	assert.ErrorIs(t, err, author.ErrDuplicateUserName)
}

func TestCreateRejectsShortPassword(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, time.Now())

	_, err := svc.Create(context.Background(), &author.CreateAuthorRequest{
		UserName: "writer",
		Password: "short",
	})
	assert.ErrorIs(t, err, author.ErrPasswordTooShort)
}

func TestUpdateKeepsSlug(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, time.Now())

	created, err := svc.Create(context.Background(), &author.CreateAuthorRequest{
		UserName: "original name",
		Password: "password123",
	})
	require.NoError(t, err)

	newName := "renamed author"
	updated, err := svc.Update(context.Background(), created.ID, &author.UpdateAuthorRequest{
		UserName: &newName,
	})
	require.NoError(t, err)

	assert.Equal(t, "renamed author", updated.UserName)
	assert.Equal(t, "original-name", updated.Slug)
}

func TestUpdateAvatarUsesCurrentUserName(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, time.Now())

	created, err := svc.Create(context.Background(), &author.CreateAuthorRequest{
		UserName: "pictured",
		Password: "password123",
	})
	require.NoError(t, err)

	filename := "new.jpg"
	updated, err := svc.Update(context.Background(), created.ID, &author.UpdateAuthorRequest{
		AvatarFilename: &filename,
	})
	require.NoError(t, err)
	assert.Equal(t, "static/library/author/pictured/new.jpg", updated.Avatar)
}

func TestAuthenticate(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, time.Now())

	created, err := svc.Create(context.Background(), &author.CreateAuthorRequest{
		UserName: "login-user",
		Password: "password123",
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		a, err := svc.Authenticate(context.Background(), "login-user", "password123")
		require.NoError(t, err)
		assert.Equal(t, created.ID, a.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "login-user", "wrong-password")
		assert.ErrorIs(t, err, author.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "nobody", "password123")
		assert.ErrorIs(t, err, author.ErrInvalidCredentials)
	})
}

func TestStoredPasswordIsBcryptHash(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, time.Now())

	created, err := svc.Create(context.Background(), &author.CreateAuthorRequest{
		UserName: "hashed",
		Password: "password123",
	})
	require.NoError(t, err)

	err = bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("password123"))
	assert.NoError(t, err)
}
