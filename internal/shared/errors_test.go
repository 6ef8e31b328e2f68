package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AlexLPinheiro/SistemaLoja/internal/platform/api"
)

func TestUserSafeMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"field error passes through", &api.FieldError{Field: "nome", Message: "categoria com este nome já existe."}, "categoria com este nome já existe."},
		{"generic passes through", &api.GenericError{Message: "Estoque insuficiente."}, "Estoque insuficiente."},
		{"not found", api.ErrNotFound, "Registro não encontrado."},
		{"wrapped not found", fmt.Errorf("get cliente: %w", api.ErrNotFound), "Registro não encontrado."},
		{"transport", &api.TransportError{Op: "GET /produtos/", Status: 502}, "Falha de comunicação com o servidor. Tente novamente."},
		{"unknown", errors.New("boom"), "Ocorreu um erro. Tente novamente."},
		{"nil", nil, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, UserSafeMessage(tc.err))
		})
	}
}

func TestFieldMessages(t *testing.T) {
	msgs := FieldMessages(&api.FieldError{Field: "telefone", Message: "Este campo é obrigatório."})
	assert.Equal(t, map[string]string{"telefone": "Este campo é obrigatório."}, msgs)

	msgs = FieldMessages(&api.TransportError{Op: "POST /clientes/", Status: 503})
	assert.Equal(t, "Falha de comunicação com o servidor. Tente novamente.", msgs["general"])

	assert.Empty(t, FieldMessages(nil))
}
