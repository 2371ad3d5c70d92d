package article

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// CreateArticleRequest - POST /v1/articles
// Title and content may be empty: the article is then a draft and stays
// out of every public surface until completed. PubDate and Slug are
// defaulted at creation when omitted and never regenerated afterwards.
type CreateArticleRequest struct {
	Title    string     `json:"title"`
	AuthorID string     `json:"author_id"`
	Content  string     `json:"content,omitempty"`
	PubDate  *time.Time `json:"pub_date,omitempty"`
	TagIDs   []string   `json:"tag_ids,omitempty"`
}

func (r CreateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.RuneLength(0, MaxTitleLength)),
		validation.Field(&r.AuthorID, validation.Required, is.UUIDv4),
		validation.Field(&r.TagIDs, validation.Each(is.UUIDv4)),
	)
}

// UpdateArticleRequest - PUT /v1/articles/:id
// Partial update; nil fields are left alone. Editing the title does NOT
// regenerate the slug (URL stability wins over fresh slugs).
type UpdateArticleRequest struct {
	Title   *string    `json:"title,omitempty"`
	Content *string    `json:"content,omitempty"`
	PubDate *time.Time `json:"pub_date,omitempty"`
	TagIDs  *[]string  `json:"tag_ids,omitempty"`
}

func (r UpdateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.RuneLength(0, MaxTitleLength)),
		validation.Field(&r.TagIDs, validation.Each(is.UUIDv4)),
	)
}

// ArticleResponse - public article representation
type ArticleResponse struct {
	ID       uuid.UUID         `json:"id"`
	Title    string            `json:"title"`
	Slug     string            `json:"slug"`
	AuthorID uuid.UUID         `json:"author_id"`
	Content  string            `json:"content"`
	PubDate  time.Time         `json:"pub_date"`
	Tags     []TagRef          `json:"tags"`
	TagsText string            `json:"tags_text"`
	Status   PublicationStatus `json:"status"`
}

// ToResponse converts Article to ArticleResponse, deriving status at
// the given instant.
func (a *Article) ToResponse(now time.Time) *ArticleResponse {
	tags := a.Tags
	if tags == nil {
		tags = []TagRef{}
	}
	return &ArticleResponse{
		ID:       a.ID,
		Title:    a.Title,
		Slug:     a.Slug,
		AuthorID: a.AuthorID,
		Content:  a.Content,
		PubDate:  a.PubDate,
		Tags:     tags,
		TagsText: a.TagsAsText(),
		Status:   a.Status(now),
	}
}

// ArticleListResponse - GET /v1/articles
type ArticleListResponse struct {
	Data  []ArticleResponse `json:"data"`
	Total int               `json:"total"`
}
