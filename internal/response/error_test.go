package response

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "NOT_FOUND: Article not found", NewNotFoundError("Article not found", "").Error())
	assert.Equal(t,
		"INTERNAL_ERROR: Failed to create article (disk full)",
		NewInternalError("Failed to create article", "disk full").Error(),
	)
}

func TestAppError_ErrorsAs(t *testing.T) {
	var err error = NewValidationError("Invalid form", "title")

	var appErr *AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, ErrCodeValidation, appErr.Code)
	assert.Equal(t, "title", appErr.Details)
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrCodeNotFound, CodeOf(NewNotFoundError("x", "")))
	assert.Equal(t, "", CodeOf(errors.New("plain")))
	assert.Equal(t, "", CodeOf(nil))
}
