package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorsMapToBadRequest(t *testing.T) {
	err := CreateTagRequest{}.Validate()
	assert.Error(t, err)
	assert.Equal(t, 400, ToHTTPStatus(err))
	assert.Equal(t, "VALIDATION_ERROR", ToErrorCode(err))
}

func TestSentinelErrorMapping(t *testing.T) {
	assert.Equal(t, 404, ToHTTPStatus(ErrTagNotFound))
	assert.Equal(t, 409, ToHTTPStatus(ErrDuplicateName))
	assert.Equal(t, 400, ToHTTPStatus(ErrNameTooLong))
	assert.Equal(t, "VALIDATION_ERROR", ToErrorCode(ErrNameTooLong))
}
