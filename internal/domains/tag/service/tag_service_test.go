package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"articles-backend/internal/domains/tag"
)

type fakeRepo struct {
	tags map[uuid.UUID]*tag.Tag
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{tags: make(map[uuid.UUID]*tag.Tag)}
}

func (r *fakeRepo) Create(ctx context.Context, t *tag.Tag) (*tag.Tag, error) {
	stored := *t
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.tags[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*tag.Tag, error) {
	t, ok := r.tags[id]
	if !ok {
		return nil, tag.ErrTagNotFound
	}
	out := *t
	return &out, nil
}

func (r *fakeRepo) GetBySlug(ctx context.Context, slug string) (*tag.Tag, error) {
	for _, t := range r.tags {
		if t.Slug == slug {
			out := *t
			return &out, nil
		}
	}
	return nil, tag.ErrTagNotFound
}

func (r *fakeRepo) GetAll(ctx context.Context) ([]tag.Tag, error) {
	var out []tag.Tag
	for _, t := range r.tags {
		out = append(out, *t)
	}
	return out, nil
}

func (r *fakeRepo) Update(ctx context.Context, t *tag.Tag) (*tag.Tag, error) {
	stored, ok := r.tags[t.ID]
	if !ok {
		return nil, tag.ErrTagNotFound
	}
	stored.Name = t.Name
	stored.UpdatedAt = time.Now()
	out := *stored
	return &out, nil
}

func (r *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.tags[id]; !ok {
		return tag.ErrTagNotFound
	}
	delete(r.tags, id)
	return nil
}

func (r *fakeRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	for _, t := range r.tags {
		if t.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	for _, t := range r.tags {
		if t.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func TestCreateDerivesSlug(t *testing.T) {
	svc := NewTagService(newFakeRepo())

	created, err := svc.Create(context.Background(), &tag.CreateTagRequest{Name: "Go Programming"})
	require.NoError(t, err)
	assert.Equal(t, "Go Programming", created.Name)
	assert.Equal(t, "go-programming", created.Slug)
}

func TestCreateTrimsName(t *testing.T) {
	svc := NewTagService(newFakeRepo())

	created, err := svc.Create(context.Background(), &tag.CreateTagRequest{Name: "  spaced  "})
	require.NoError(t, err)
	assert.Equal(t, "spaced", created.Name)
}

func TestCreateNameLengthCountsRunes(t *testing.T) {
	svc := NewTagService(newFakeRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, &tag.CreateTagRequest{
		Name: strings.Repeat("é", tag.MaxNameLength),
	})
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("e", tag.MaxNameLength), created.Slug)

	_, err = svc.Create(ctx, &tag.CreateTagRequest{
		Name: strings.Repeat("é", tag.MaxNameLength+1),
	})
	assert.Error(t, err)
}

func TestCreateRejectsDuplicateName(t *testing.T) {
	svc := NewTagService(newFakeRepo())

	_, err := svc.Create(context.Background(), &tag.CreateTagRequest{Name: "databases"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &tag.CreateTagRequest{Name: "databases"})
	assert.ErrorIs(t, err, tag.ErrDuplicateName)
}

func TestCreateRejectsSlugCollision(t *testing.T) {
	svc := NewTagService(newFakeRepo())

	_, err := svc.Create(context.Background(), &tag.CreateTagRequest{Name: "Web Dev"})
	require.NoError(t, err)

	// Different name, same slug after normalization.
	_, err = svc.Create(context.Background(), &tag.CreateTagRequest{Name: "web dev"})
	assert.ErrorIs(t, err, tag.ErrDuplicateSlug)
}

func TestCreateRejectsEmptyName(t *testing.T) {
	svc := NewTagService(newFakeRepo())

	_, err := svc.Create(context.Background(), &tag.CreateTagRequest{Name: "   "})
	assert.Error(t, err)
}

func TestUpdateKeepsSlug(t *testing.T) {
	svc := NewTagService(newFakeRepo())

	created, err := svc.Create(context.Background(), &tag.CreateTagRequest{Name: "old name"})
	require.NoError(t, err)

	newName := "new name"
	updated, err := svc.Update(context.Background(), created.ID, &tag.UpdateTagRequest{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, "new name", updated.Name)
	assert.Equal(t, "old-name", updated.Slug)
}

func TestDeleteUnknownTag(t *testing.T) {
	svc := NewTagService(newFakeRepo())

	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, tag.ErrTagNotFound)
}
