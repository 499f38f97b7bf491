package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reelmedia/reel/pkg/errors"
)

func TestErrorPredicates(t *testing.T) {
	assert.True(t, errors.IsNotFound(errors.NotFound("missing")))
	assert.True(t, errors.IsBadRequest(errors.BadRequest("bad")))
	assert.True(t, errors.IsConflict(errors.Conflict("taken")))
	assert.True(t, errors.IsUnauthorized(errors.Unauthorized("nope")))
	assert.True(t, errors.IsForbidden(errors.Forbidden("no access")))
	assert.True(t, errors.IsInternal(errors.Internal("boom")))

	assert.False(t, errors.IsNotFound(errors.BadRequest("bad")))
	assert.False(t, errors.IsNotFound(fmt.Errorf("plain error")))
}

func TestErrorPredicates_Wrapped(t *testing.T) {
	inner := errors.NotFound("missing")
	wrapped := fmt.Errorf("loading document: %w", inner)

	assert.True(t, errors.IsNotFound(wrapped))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, errors.HTTPStatus(errors.NotFound("x")))
	assert.Equal(t, http.StatusBadRequest, errors.HTTPStatus(errors.BadRequest("x")))
	assert.Equal(t, http.StatusConflict, errors.HTTPStatus(errors.Conflict("x")))
	assert.Equal(t, http.StatusUnauthorized, errors.HTTPStatus(errors.Unauthorized("x")))
	assert.Equal(t, http.StatusForbidden, errors.HTTPStatus(errors.Forbidden("x")))
	assert.Equal(t, http.StatusInternalServerError, errors.HTTPStatus(errors.Internal("x")))
	assert.Equal(t, http.StatusInternalServerError, errors.HTTPStatus(fmt.Errorf("plain")))
}

func TestBody_MasksInternalDetails(t *testing.T) {
	body := errors.Body(fmt.Errorf("password for db is hunter2"))

	assert.Equal(t, "INTERNAL", body.Error.Code)
	assert.Equal(t, "internal server error", body.Error.Message)
}

func TestBody_KeepsClientFacingMessage(t *testing.T) {
	body := errors.Body(errors.NotFound("movie not found"))

	assert.Equal(t, "NOT_FOUND", body.Error.Code)
	assert.Equal(t, "movie not found", body.Error.Message)
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, errors.IsDuplicateError(fmt.Errorf("UNIQUE constraint failed: genres.name")))
	assert.True(t, errors.IsDuplicateError(fmt.Errorf("duplicate key value violates unique constraint")))
	assert.False(t, errors.IsDuplicateError(fmt.Errorf("connection refused")))
	assert.False(t, errors.IsDuplicateError(nil))
}
