package author

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorsMapToBadRequest(t *testing.T) {
	err := CreateAuthorRequest{UserName: "x", Password: "short"}.Validate()
	assert.Error(t, err)
	assert.Equal(t, 400, ToHTTPStatus(err))
	assert.Equal(t, "VALIDATION_ERROR", ToErrorCode(err))
}

func TestSentinelErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"password too short", ErrPasswordTooShort, 400, "VALIDATION_ERROR"},
		{"invalid user name", ErrInvalidUserName, 400, "VALIDATION_ERROR"},
		{"user name too long", ErrUserNameTooLong, 400, "VALIDATION_ERROR"},
		{"not found", ErrAuthorNotFound, 404, "AUTHOR_NOT_FOUND"},
		{"duplicate user name", ErrDuplicateUserName, 409, "DUPLICATE_USER_NAME"},
		{"bad credentials", ErrInvalidCredentials, 401, "INVALID_CREDENTIALS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, ToHTTPStatus(tt.err))
			assert.Equal(t, tt.code, ToErrorCode(tt.err))
		})
	}
}
