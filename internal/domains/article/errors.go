package article

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// Validation errors
	ErrTitleTooLong = errors.New("article title exceeds maximum length")
	ErrInvalidSlug  = errors.New("article slug is invalid")

	// Business rule errors
	ErrArticleNotFound = errors.New("article not found")
	ErrDuplicateSlug   = errors.New("article with this slug already exists")
	ErrAuthorNotFound  = errors.New("article author does not exist")
	ErrTagNotFound     = errors.New("one or more tags do not exist")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return "VALIDATION_ERROR"
	}

	switch err {
	case ErrArticleNotFound:
		return "ARTICLE_NOT_FOUND"
	case ErrDuplicateSlug:
		return "DUPLICATE_SLUG"
	case ErrAuthorNotFound:
		return "AUTHOR_NOT_FOUND"
	case ErrTagNotFound:
		return "TAG_NOT_FOUND"
	case ErrTitleTooLong, ErrInvalidSlug:
		return "VALIDATION_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return 400
	}

	switch err {
	case ErrArticleNotFound:
		return 404
	case ErrDuplicateSlug:
		return 409
	case ErrAuthorNotFound, ErrTagNotFound:
		return 422
	case ErrTitleTooLong, ErrInvalidSlug:
		return 400
	default:
		return 500
	}
}
