package service

import (
	"errors"
	"fmt"
	"net/http"

	"profilehub/internal/i18n"
)

// Kind classifies every failure an endpoint can report. Each kind maps to one
// message key and one status code.
type Kind int

const (
	KindInternal Kind = iota
	KindMissingCredential
	KindInvalidCredential
	KindBadRequest
	KindUserNotFound
	KindConnection
	KindQuery
	KindUserCount
	KindImageDeletion
	KindInvocation
	KindRateLimited
)

var kindInfo = map[Kind]struct {
	name   string
	key    string
	status int
}{
	KindInternal:          {"internal", i18n.KeyInternalError, http.StatusInternalServerError},
	KindMissingCredential: {"missing_credential", i18n.KeyEventDataStatus, http.StatusBadRequest},
	KindInvalidCredential: {"invalid_credential", i18n.KeyUnauthorized, http.StatusForbidden},
	KindBadRequest:        {"bad_request", i18n.KeyEventDataStatus, http.StatusBadRequest},
	KindUserNotFound:      {"user_not_found", i18n.KeyInvalidUser, http.StatusNotFound},
	KindConnection:        {"connection", i18n.KeyConnectionStatus, http.StatusInternalServerError},
	KindQuery:             {"query", i18n.KeyQueryExecutionStatus, http.StatusInternalServerError},
	KindUserCount:         {"user_count", i18n.KeyTotalUserCount, http.StatusInternalServerError},
	KindImageDeletion:     {"image_deletion", i18n.KeyImageStatus, http.StatusInternalServerError},
	KindInvocation:        {"invocation", i18n.KeyInvocationError, http.StatusInternalServerError},
	KindRateLimited:       {"rate_limited", i18n.KeyRateLimited, http.StatusTooManyRequests},
}

func (k Kind) String() string {
	if info, ok := kindInfo[k]; ok {
		return info.name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// MessageKey is the catalog key shown to the caller.
func (k Kind) MessageKey() string {
	if info, ok := kindInfo[k]; ok {
		return info.key
	}
	return i18n.KeyInternalError
}

// Status is the HTTP status code of the error envelope.
func (k Kind) Status() int {
	if info, ok := kindInfo[k]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}

// Error is a classified failure. Op names the step that failed and Err keeps
// the diagnostic cause for logs; neither is shown to callers.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Fail builds a classified error.
func Fail(kind Kind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf extracts the kind of err; unclassified errors are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
