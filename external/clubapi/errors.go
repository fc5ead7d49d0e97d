package clubapi

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies a failed request by what went wrong, so screens can pick
// the right copy without inspecting status codes.
type Kind string

const (
	// KindNetwork covers transport failures where no response arrived.
	KindNetwork Kind = "network"
	// KindTimeout covers requests that ran past their deadline.
	KindTimeout Kind = "timeout"
	// KindServer covers 5xx responses.
	KindServer Kind = "server"
	// KindClient covers 4xx responses, including validation rejections.
	KindClient Kind = "client"
	// KindDecode covers 2xx responses whose body could not be interpreted.
	KindDecode Kind = "decode"
)

// Error is the normalized form every client failure collapses into. Message
// is always safe to show; Detail, Field and Validation are populated when the
// backend's error envelope carried them.
type Error struct {
	Kind       Kind
	Status     int
	Code       int
	Message    string
	Detail     string
	Field      string
	Validation map[string]string
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "club api: %s", e.Message)
	if e.Status > 0 {
		fmt.Fprintf(&b, " (status=%d)", e.Status)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, " field=%s", e.Field)
	}
	if e.Detail != "" {
		fmt.Fprintf(&b, ": %s", e.Detail)
	}
	return b.String()
}

// Unauthorized reports whether the session token was rejected.
func (e *Error) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// NotFound reports whether the addressed record does not exist.
func (e *Error) NotFound() bool {
	return e.Status == http.StatusNotFound
}

// AsError unwraps err into the normalized form when one is present.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if stderrors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func kindForStatus(status int) Kind {
	if status >= http.StatusInternalServerError {
		return KindServer
	}
	return KindClient
}

func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}
