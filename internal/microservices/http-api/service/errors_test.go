package service

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"profilehub/internal/i18n"
)

func TestKindMapping(t *testing.T) {
	tests := []struct {
		kind   Kind
		key    string
		status int
	}{
		{KindMissingCredential, i18n.KeyEventDataStatus, http.StatusBadRequest},
		{KindInvalidCredential, i18n.KeyUnauthorized, http.StatusForbidden},
		{KindUserNotFound, i18n.KeyInvalidUser, http.StatusNotFound},
		{KindConnection, i18n.KeyConnectionStatus, http.StatusInternalServerError},
		{KindQuery, i18n.KeyQueryExecutionStatus, http.StatusInternalServerError},
		{KindInternal, i18n.KeyInternalError, http.StatusInternalServerError},
		{KindImageDeletion, i18n.KeyImageStatus, http.StatusInternalServerError},
		{KindInvocation, i18n.KeyInvocationError, http.StatusInternalServerError},
		{KindRateLimited, i18n.KeyRateLimited, http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.key, tt.kind.MessageKey())
			assert.Equal(t, tt.status, tt.kind.Status())
		})
	}
}

func TestKindOf(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := fmt.Errorf("wrapped: %w", Fail(KindConnection, "count user", cause))

	assert.Equal(t, KindConnection, KindOf(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
}

func TestUnknownKind(t *testing.T) {
	k := Kind(99)
	assert.Equal(t, "kind(99)", k.String())
	assert.Equal(t, i18n.KeyInternalError, k.MessageKey())
	assert.Equal(t, http.StatusInternalServerError, k.Status())
}
