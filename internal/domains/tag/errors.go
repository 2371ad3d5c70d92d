package tag

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// Validation errors
	ErrInvalidName = errors.New("tag name is empty")
	ErrNameTooLong = errors.New("tag name exceeds maximum length")
	ErrInvalidSlug = errors.New("tag slug is invalid")

	// Business rule errors
	ErrTagNotFound   = errors.New("tag not found")
	ErrDuplicateName = errors.New("tag with this name already exists")
	ErrDuplicateSlug = errors.New("tag with this slug already exists")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return "VALIDATION_ERROR"
	}

	switch err {
	case ErrTagNotFound:
		return "TAG_NOT_FOUND"
	case ErrDuplicateName:
		return "DUPLICATE_NAME"
	case ErrDuplicateSlug:
		return "DUPLICATE_SLUG"
	case ErrInvalidName, ErrNameTooLong, ErrInvalidSlug:
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
	case ErrTagNotFound:
		return 404
	case ErrDuplicateName, ErrDuplicateSlug:
		return 409
	case ErrInvalidName, ErrNameTooLong, ErrInvalidSlug:
		return 400
	default:
		return 500
	}
}
