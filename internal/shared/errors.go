package shared

import (
	"errors"

	"github.com/AlexLPinheiro/SistemaLoja/internal/platform/api"
)

var (
	// ErrCSRFTokenMissing occurs when the CSRF token is absent.
	ErrCSRFTokenMissing = errors.New("csrf token missing")
	// ErrCSRFTokenMismatch occurs when CSRF tokens do not match.
	ErrCSRFTokenMismatch = errors.New("csrf token mismatch")
)

// UserSafeMessage resolves an error to the pt-BR message shown to the user.
// Backend validation messages pass through verbatim; everything else maps to
// a fixed notice so internals never leak into the page.
func UserSafeMessage(err error) string {
	if err == nil {
		return ""
	}

	var fieldErr *api.FieldError
	if errors.As(err, &fieldErr) {
		return fieldErr.Message
	}

	var generic *api.GenericError
	if errors.As(err, &generic) {
		return generic.Message
	}

	if errors.Is(err, api.ErrNotFound) {
		return "Registro não encontrado."
	}

	var transport *api.TransportError
	if errors.As(err, &transport) {
		return "Falha de comunicação com o servidor. Tente novamente."
	}

	return "Ocorreu um erro. Tente novamente."
}

// FieldMessages extracts the inline form errors for an error, keyed by the
// backend's field name. Non-field errors land under "general".
func FieldMessages(err error) map[string]string {
	if err == nil {
		return map[string]string{}
	}
	var fieldErr *api.FieldError
	if errors.As(err, &fieldErr) {
		return map[string]string{fieldErr.Field: fieldErr.Message}
	}
	return map[string]string{"general": UserSafeMessage(err)}
}
