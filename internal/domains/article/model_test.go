package article

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tagRef(name string) TagRef {
	return TagRef{ID: uuid.New(), Name: name, Slug: name}
}

func buildArticle(title, content string, pubDate, createdAt time.Time, tags ...TagRef) Article {
	return Article{
		ID:        uuid.New(),
		Title:     title,
		Content:   content,
		PubDate:   pubDate,
		CreatedAt: createdAt,
		Tags:      tags,
	}
}

func TestTagsAsText(t *testing.T) {
	now := time.Now()

	t.Run("single tag", func(t *testing.T) {
		a := buildArticle("t", "c", now, now, tagRef("test tag"))
		assert.Equal(t, "test tag", a.TagsAsText())
	})

	t.Run("alphabetical not insertion order", func(t *testing.T) {
		a := buildArticle("t", "c", now, now, tagRef("tag"), tagRef("another_tag"))
		assert.Equal(t, "another_tag, tag", a.TagsAsText())
	})

	t.Run("many tags sorted", func(t *testing.T) {
		a := buildArticle("t", "c", now, now,
			tagRef("tag b"), tagRef("tag d"), tagRef("tag c"), tagRef("tag a"))
		assert.Equal(t, "tag a, tag b, tag c, tag d", a.TagsAsText())
	})

	t.Run("no tags", func(t *testing.T) {
		a := buildArticle("t", "c", now, now)
		assert.Equal(t, "", a.TagsAsText())
	})
}

func TestArticleVisible(t *testing.T) {
	now := time.Now()
	tag := tagRef("test tag")

	tests := []struct {
		name    string
		article Article
		visible bool
	}{
		{"past pub date", buildArticle("title", "content", now.Add(-24*time.Hour), now, tag), true},
		{"present pub date", buildArticle("title", "content", now, now, tag), true},
		{"future pub date", buildArticle("title", "content", now.Add(24*time.Hour), now, tag), false},
		{"missing title", buildArticle("", "content", now, now, tag), false},
		{"missing content", buildArticle("title", "", now, now, tag), false},
		{"no tags", buildArticle("title", "content", now, now), false},
		{"empty everything", buildArticle("", "", now.Add(24*time.Hour), now), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.visible, tt.article.Visible(now))
		})
	}
}

func TestArticleStatus(t *testing.T) {
	now := time.Now()
	tag := tagRef("test tag")

	t.Run("draft when incomplete even if past dated", func(t *testing.T) {
		a := buildArticle("", "content", now.Add(-time.Hour), now, tag)
		assert.Equal(t, StatusDraft, a.Status(now))
	})

	t.Run("scheduled when complete but future dated", func(t *testing.T) {
		a := buildArticle("title", "content", now.Add(time.Hour), now, tag)
		assert.Equal(t, StatusScheduled, a.Status(now))
	})

	t.Run("published when complete and past dated", func(t *testing.T) {
		a := buildArticle("title", "content", now.Add(-time.Hour), now, tag)
		assert.Equal(t, StatusPublished, a.Status(now))
	})

	t.Run("status transitions with the clock alone", func(t *testing.T) {
		a := buildArticle("title", "content", now.Add(time.Hour), now, tag)
		assert.Equal(t, StatusScheduled, a.Status(now))
		assert.Equal(t, StatusPublished, a.Status(now.Add(2*time.Hour)))
	})
}

func TestVisibleArticles(t *testing.T) {
	now := time.Now()
	tag := tagRef("test tag")

	t.Run("filters and orders newest first", func(t *testing.T) {
		oldest := buildArticle("d", "c", now.Add(-3*time.Hour), now, tag)
		older := buildArticle("c", "c", now.Add(-2*time.Hour), now, tag)
		recent := buildArticle("b", "c", now.Add(-time.Hour), now, tag)
		newest := buildArticle("a", "c", now, now, tag)
		future := buildArticle("f", "c", now.Add(24*time.Hour), now, tag)
		draft := buildArticle("", "c", now.Add(-time.Hour), now, tag)

		got := VisibleArticles([]Article{older, oldest, draft, recent, future, newest}, now)

		require.Len(t, got, 4)
		assert.Equal(t, newest.ID, got[0].ID)
		assert.Equal(t, recent.ID, got[1].ID)
		assert.Equal(t, older.ID, got[2].ID)
		assert.Equal(t, oldest.ID, got[3].ID)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		got := VisibleArticles(nil, now)
		assert.Empty(t, got)
	})

	t.Run("all invisible yields empty output", func(t *testing.T) {
		future := buildArticle("f", "c", now.Add(24*time.Hour), now, tag)
		got := VisibleArticles([]Article{future}, now)
		assert.Empty(t, got)
	})
}

func TestSortNewestFirstTieBreak(t *testing.T) {
	now := time.Now()
	tag := tagRef("test tag")
	pub := now.Add(-time.Hour)

	// Same pub_date: the most recently created sorts first.
	first := buildArticle("first", "c", pub, now.Add(-3*time.Minute), tag)
	second := buildArticle("second", "c", pub, now.Add(-2*time.Minute), tag)
	third := buildArticle("third", "c", pub, now.Add(-time.Minute), tag)

	got := SortNewestFirst([]Article{first, second, third})

	require.Len(t, got, 3)
	assert.Equal(t, third.ID, got[0].ID)
	assert.Equal(t, second.ID, got[1].ID)
	assert.Equal(t, first.ID, got[2].ID)
}

func TestSortNewestFirstReverseInsertionOnFullTie(t *testing.T) {
	now := time.Now()
	tag := tagRef("test tag")
	pub := now.Add(-time.Hour)

	// Identical pub_date AND created_at: reverse insertion order wins,
	// matching descending-primary-key behaviour.
	a := buildArticle("a", "c", pub, now, tag)
	b := buildArticle("b", "c", pub, now, tag)
	c := buildArticle("c", "c", pub, now, tag)

	got := SortNewestFirst([]Article{a, b, c})

	require.Len(t, got, 3)
	assert.Equal(t, c.ID, got[0].ID)
	assert.Equal(t, b.ID, got[1].ID)
	assert.Equal(t, a.ID, got[2].ID)
}

func TestSortNewestFirstDoesNotMutateInput(t *testing.T) {
	now := time.Now()
	tag := tagRef("test tag")
	a := buildArticle("a", "c", now.Add(-2*time.Hour), now, tag)
	b := buildArticle("b", "c", now, now, tag)

	input := []Article{a, b}
	_ = SortNewestFirst(input)

	assert.Equal(t, a.ID, input[0].ID)
	assert.Equal(t, b.ID, input[1].ID)
}
