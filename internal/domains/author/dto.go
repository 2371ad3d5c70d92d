package author

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// CreateAuthorRequest - POST /v1/authors
// JoinedAt, Slug and Avatar are defaulted at creation when omitted:
// joined_at ← now, slug ← slugified user name, avatar ← placeholder
// asset. AvatarFilename, when present, is namespaced under the author's
// upload directory.
type CreateAuthorRequest struct {
	UserName       string  `json:"user_name"`
	Email          *string `json:"email,omitempty"`
	Password       string  `json:"password"`
	AvatarFilename *string `json:"avatar_filename,omitempty"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserName, validation.Required,
			validation.RuneLength(MinUserNameLength, MaxUserNameLength)),
		validation.Field(&r.Email, is.Email),
		validation.Field(&r.Password, validation.Required,
			validation.RuneLength(MinPasswordLength, 0)),
	)
}

// UpdateAuthorRequest - PUT /v1/authors/:id
// Partial update. The slug is never regenerated, even when the user
// name changes: author URLs stay stable.
type UpdateAuthorRequest struct {
	UserName       *string `json:"user_name,omitempty"`
	Email          *string `json:"email,omitempty"`
	AvatarFilename *string `json:"avatar_filename,omitempty"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserName,
			validation.RuneLength(MinUserNameLength, MaxUserNameLength)),
		validation.Field(&r.Email, is.Email),
	)
}

// LoginRequest - POST /v1/auth/login
type LoginRequest struct {
	UserName string `json:"user_name"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserName, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// AuthorResponse - public author representation. Email is omitted when
// the author never shared one.
type AuthorResponse struct {
	ID       uuid.UUID `json:"id"`
	UserName string    `json:"user_name"`
	Email    *string   `json:"email,omitempty"`
	Slug     string    `json:"slug"`
	Avatar   string    `json:"avatar"`
	JoinedAt time.Time `json:"joined_at"`
}

func (a *Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{
		ID:       a.ID,
		UserName: a.UserName,
		Email:    a.Email,
		Slug:     a.Slug,
		Avatar:   a.Avatar,
		JoinedAt: a.JoinedAt,
	}
}

// TokenResponse - POST /v1/auth/login
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
