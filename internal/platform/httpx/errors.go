package httpx

import (
	"errors"
	"net/http"

	"github.com/AlexLPinheiro/SistemaLoja/internal/platform/api"
)

// RespondError maps the gateway error taxonomy to RFC7807 responses for the
// JSON endpoints.
func RespondError(w http.ResponseWriter, err error) {
	var fieldErr *api.FieldError
	var genericErr *api.GenericError
	var transportErr *api.TransportError
	switch {
	case errors.Is(err, api.ErrNotFound):
		Problem(w, http.StatusNotFound, "Registro não encontrado", "")
	case errors.As(err, &fieldErr):
		Problem(w, http.StatusBadRequest, "Dados inválidos", fieldErr.Message)
	case errors.As(err, &genericErr):
		Problem(w, http.StatusBadRequest, "Dados inválidos", genericErr.Message)
	case errors.As(err, &transportErr):
		Problem(w, http.StatusBadGateway, "Falha de comunicação com o servidor", "")
	default:
		Problem(w, http.StatusInternalServerError, "Erro interno", "")
	}
}
