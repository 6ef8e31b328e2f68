// Package api is the HTTP client for the remote loja backend. It owns the
// error taxonomy: the shape of an error response is decided exactly once
// here, so call sites switch on tagged variants instead of re-sniffing JSON.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// ErrNotFound signals a stale reference: the record was deleted or never
// existed on the backend.
var ErrNotFound = errors.New("api: resource not found")

// FieldError is a validation failure the backend attributes to a single
// field, e.g. {"nome": ["categoria com este nome já existe."]}.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("api: campo %s: %s", e.Field, e.Message)
}

// GenericError is a validation failure without field attribution: a
// {"detail": "..."} payload or a bare message array.
type GenericError struct {
	Message string
}

func (e *GenericError) Error() string {
	return "api: " + e.Message
}

// TransportError wraps network failures and unexpected server statuses.
// Callers treat it as recoverable: show a message, keep current state.
type TransportError struct {
	Op     string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("api: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("api: %s: status %d", e.Op, e.Status)
}

func (e *TransportError) Unwrap() error { return e.Err }

// decodeError classifies a non-2xx response body. Known Django REST shapes:
// a field-keyed map of message arrays, a {"detail": "..."} object, or a bare
// array of messages.
func decodeError(op string, status int, body []byte) error {
	if status == 404 {
		return ErrNotFound
	}
	if status >= 500 {
		return &TransportError{Op: op, Status: status}
	}

	var asMap map[string]json.RawMessage
	if err := json.Unmarshal(body, &asMap); err == nil && len(asMap) > 0 {
		if raw, ok := asMap["detail"]; ok {
			var detail string
			if json.Unmarshal(raw, &detail) == nil && detail != "" {
				return &GenericError{Message: detail}
			}
		}
		// Deterministic field choice when several fields failed.
		keys := make([]string, 0, len(asMap))
		for k := range asMap {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, field := range keys {
			if msg := firstMessage(asMap[field]); msg != "" {
				return &FieldError{Field: field, Message: msg}
			}
		}
	}

	var asList []string
	if err := json.Unmarshal(body, &asList); err == nil && len(asList) > 0 {
		return &GenericError{Message: asList[0]}
	}

	return &TransportError{Op: op, Status: status}
}

func firstMessage(raw json.RawMessage) string {
	var list []string
	if json.Unmarshal(raw, &list) == nil && len(list) > 0 {
		return list[0]
	}
	var single string
	if json.Unmarshal(raw, &single) == nil {
		return single
	}
	return ""
}
