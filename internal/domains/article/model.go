package article

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxTitleLength caps article titles at the storage column width.
const MaxTitleLength = 150

// TagRef is the slice of a tag an article carries around. The tag
// domain owns the full entity; articles only need identity and name.
type TagRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

// Article is a publishable piece of content. There is no stored status
// column: whether an article is draft, scheduled or published is always
// recomputed from its fields and the current instant.
type Article struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	AuthorID  uuid.UUID `json:"author_id"`
	Content   string    `json:"content"`
	PubDate   time.Time `json:"pub_date"`
	Tags      []TagRef  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublicationStatus is derived, never persisted.
type PublicationStatus string

const (
	// StatusDraft: incomplete content (missing title, content or tags).
	StatusDraft PublicationStatus = "draft"
	// StatusScheduled: complete but pub_date is still in the future.
	StatusScheduled PublicationStatus = "scheduled"
	// StatusPublished: complete and pub_date has passed.
	StatusPublished PublicationStatus = "published"
)

// Visible is the single publication predicate shared by every surface.
// Listings filter with it and detail lookups reject with it, so no path
// can ever see a draft or a future-dated article. An article is visible
// iff it has a title, content, at least one tag, and its pub_date is not
// in the future. Incomplete content is treated exactly like unpublished
// content.
func (a *Article) Visible(now time.Time) bool {
	return a.complete() && !a.PubDate.After(now)
}

// Status derives the publication state from field values and the clock.
func (a *Article) Status(now time.Time) PublicationStatus {
	if !a.complete() {
		return StatusDraft
	}
	if a.PubDate.After(now) {
		return StatusScheduled
	}
	return StatusPublished
}

func (a *Article) complete() bool {
	return a.Title != "" && a.Content != "" && len(a.Tags) > 0
}

// TagsAsText renders the article's tag names as a comma-separated list
// in alphabetical order, regardless of the order tags were attached.
func (a *Article) TagsAsText() string {
	names := make([]string, len(a.Tags))
	for i, t := range a.Tags {
		names[i] = t.Name
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// VisibleArticles filters out everything the publication predicate
// rejects and returns the survivors newest first. An empty result is a
// normal outcome, not an error.
func VisibleArticles(articles []Article, now time.Time) []Article {
	visible := make([]Article, 0, len(articles))
	for _, a := range articles {
		if a.Visible(now) {
			visible = append(visible, a)
		}
	}
	return SortNewestFirst(visible)
}

// SortNewestFirst orders articles by pub_date descending. Equal
// timestamps fall back to creation time descending, then to reverse
// insertion order, so the most recently created article of a tie sorts
// first. The input slice is not modified.
func SortNewestFirst(articles []Article) []Article {
	sorted := make([]Article, len(articles))
	for i, a := range articles {
		// Reversed copy: the stable sort then keeps later-inserted
		// articles ahead of earlier ones within equal keys.
		sorted[len(articles)-1-i] = a
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].PubDate.Equal(sorted[j].PubDate) {
			return sorted[i].PubDate.After(sorted[j].PubDate)
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	return sorted
}
