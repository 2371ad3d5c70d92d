package author

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// Validation errors
	ErrInvalidUserName  = errors.New("author user name is invalid")
	ErrUserNameTooLong  = errors.New("author user name exceeds maximum length")
	ErrPasswordTooShort = errors.New("password is too short")
	ErrInvalidSlug      = errors.New("author slug is invalid")

	// Business rule errors
	ErrAuthorNotFound     = errors.New("author not found")
	ErrDuplicateUserName  = errors.New("author with this user name already exists")
	ErrDuplicateSlug      = errors.New("author with this slug already exists")
	ErrInvalidCredentials = errors.New("invalid user name or password")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return "VALIDATION_ERROR"
	}

	switch err {
	case ErrAuthorNotFound:
		return "AUTHOR_NOT_FOUND"
	case ErrDuplicateUserName:
		return "DUPLICATE_USER_NAME"
	case ErrDuplicateSlug:
		return "DUPLICATE_SLUG"
	case ErrInvalidCredentials:
		return "INVALID_CREDENTIALS"
	case ErrInvalidUserName, ErrUserNameTooLong, ErrPasswordTooShort, ErrInvalidSlug:
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
	case ErrAuthorNotFound:
		return 404
	case ErrDuplicateUserName, ErrDuplicateSlug:
		return 409
	case ErrInvalidCredentials:
		return 401
	case ErrInvalidUserName, ErrUserNameTooLong, ErrPasswordTooShort, ErrInvalidSlug:
		return 400
	default:
		return 500
	}
}
