package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(ErrCodeInvalidGraph, cause, "node %d", 3)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "INVALID_GRAPH: node 3: boom", err.Error())
	assert.Equal(t, "node 3", UserMessage(err))
}

func TestIsThroughFmtWrapping(t *testing.T) {
	err := fmt.Errorf("loading: %w", New(ErrCodeInvalidCoordinates, "bad"))

	assert.True(t, Is(err, ErrCodeInvalidCoordinates))
	assert.False(t, Is(err, ErrCodeInternal))
	assert.Equal(t, ErrCodeInvalidCoordinates, GetCode(err))
	assert.Equal(t, Code(""), GetCode(errors.New("plain")))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(New(ErrCodeInvalidCoordinates, "x")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(New(ErrCodeInvalidInput, "x")))
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(New(ErrCodeUnavailable, "x")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(New(ErrCodeInternal, "x")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain")))
}
