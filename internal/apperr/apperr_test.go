package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindStatus(t *testing.T) {
	tests := []struct {
		kind   Kind
		status int
	}{
		{Internal, http.StatusInternalServerError},
		{Invalid, http.StatusBadRequest},
		{Unauthenticated, http.StatusUnauthorized},
		{Forbidden, http.StatusForbidden},
		{NotFound, http.StatusNotFound},
		{Conflict, http.StatusBadRequest},
		{ExpiredOrInvalid, http.StatusExpectationFailed},
		{StaleWrite, http.StatusConflict},
		{RateLimited, http.StatusTooManyRequests},
		{Unavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.status, tt.kind.Status())
		})
	}
}

func TestKindOfWrappedError(t *testing.T) {
	base := New(NotFound, "ERR_POST_NOT_FOUND", "post not found")
	wrapped := fmt.Errorf("load post: %w", base)

	assert.Equal(t, NotFound, KindOf(wrapped))
	assert.True(t, Is(wrapped, NotFound))
	assert.False(t, Is(wrapped, Forbidden))
}

func TestKindOfUnclassifiedIsInternal(t *testing.T) {
	assert.Equal(t, Internal, KindOf(errors.New("boom")))
	assert.False(t, Is(nil, Internal))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(cause, Unavailable, "ERR_MAIL_UNAVAILABLE", "failed to send email")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to send email: connection reset", err.Error())
}
