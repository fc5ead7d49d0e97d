package clubapi

import (
	"encoding/json"
	"net/http"

	sonic "github.com/bytedance/sonic"
)

// envelope is the backend's single response wrapper. Success bodies carry
// code and data; error bodies carry code, message and optional detail, field
// and per-field validation messages. Both shapes decode into it, and which
// one arrived is decided by whether message is set.
type envelope struct {
	Code       int               `json:"code"`
	Message    string            `json:"message"`
	Detail     string            `json:"detail"`
	Field      string            `json:"field"`
	Validation map[string]string `json:"validation"`
	Data       json.RawMessage   `json:"data"`
}

// decodeEnvelope is the single point where response bodies are unwrapped.
// Callers never see the envelope, only the payload or a normalized *Error.
func decodeEnvelope(raw []byte, status int, target any) error {
	var env envelope
	if err := sonic.Unmarshal(raw, &env); err != nil {
		return &Error{
			Kind:    KindDecode,
			Status:  status,
			Message: "malformed response envelope",
			Detail:  err.Error(),
		}
	}

	if env.Message != "" {
		// An error body can arrive under a 2xx status; trust the envelope.
		e := errorFromEnvelope(status, env)
		if status >= http.StatusOK && status < http.StatusMultipleChoices {
			e.Kind = KindClient
		}
		return e
	}

	if target == nil {
		return nil
	}
	if len(env.Data) == 0 {
		return &Error{
			Kind:    KindDecode,
			Status:  status,
			Code:    env.Code,
			Message: "response envelope carries no data",
		}
	}
	if err := sonic.Unmarshal(env.Data, target); err != nil {
		return &Error{
			Kind:    KindDecode,
			Status:  status,
			Code:    env.Code,
			Message: "unexpected data payload shape",
			Detail:  err.Error(),
		}
	}
	return nil
}

func errorFromEnvelope(status int, env envelope) *Error {
	e := &Error{
		Kind:       kindForStatus(status),
		Status:     status,
		Code:       env.Code,
		Message:    env.Message,
		Detail:     env.Detail,
		Field:      env.Field,
		Validation: env.Validation,
	}
	if e.Code == 0 {
		e.Code = status
	}
	return e
}

// newHTTPError normalizes a non-2xx response. The body is parsed as an error
// envelope when possible; anything else falls back to the status text.
func newHTTPError(status int, raw []byte) *Error {
	var env envelope
	if err := sonic.Unmarshal(raw, &env); err == nil && env.Message != "" {
		return errorFromEnvelope(status, env)
	}
	return &Error{
		Kind:    kindForStatus(status),
		Status:  status,
		Code:    status,
		Message: http.StatusText(status),
	}
}
