package clientes

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexLPinheiro/SistemaLoja/internal/platform/api"
)

type fakeRepo struct {
	created *SaveRequest
	updated *SaveRequest
}

func (f *fakeRepo) List(_ context.Context, _ string) ([]Cliente, error) { return nil, nil }
func (f *fakeRepo) Get(_ context.Context, _ int64) (*Cliente, error)   { return nil, nil }

func (f *fakeRepo) Create(_ context.Context, req SaveRequest) (*Cliente, error) {
	f.created = &req
	return &Cliente{ID: 1, NomeCompleto: req.NomeCompleto}, nil
}

func (f *fakeRepo) Update(_ context.Context, _ int64, req SaveRequest) (*Cliente, error) {
	f.updated = &req
	return &Cliente{ID: 1, NomeCompleto: req.NomeCompleto}, nil
}

func TestCreateCombinesFirstAndLastName(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), Form{
		PrimeiroNome: " Maria ",
		Sobrenome:    "Silva ",
		Telefone:     "11 99999-0000",
		Endereco:     "Rua das Flores, 10",
	})
	require.NoError(t, err)
	require.NotNil(t, repo.created)
	assert.Equal(t, "Maria Silva", repo.created.NomeCompleto)
	assert.Equal(t, "Maria Silva", created.NomeCompleto)
}

func TestCreateRequiresAllFields(t *testing.T) {
	cases := []struct {
		name  string
		form  Form
		field string
	}{
		{"primeiro nome", Form{Sobrenome: "Silva", Telefone: "1", Endereco: "Rua"}, "primeiro_nome"},
		{"sobrenome", Form{PrimeiroNome: "Maria", Telefone: "1", Endereco: "Rua"}, "sobrenome"},
		{"telefone", Form{PrimeiroNome: "Maria", Sobrenome: "Silva", Endereco: "Rua"}, "telefone"},
		{"endereco", Form{PrimeiroNome: "Maria", Sobrenome: "Silva", Telefone: "1"}, "endereco"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewService(&fakeRepo{}).Create(context.Background(), tc.form)
			require.Error(t, err)
			var fieldErr *api.FieldError
			require.True(t, errors.As(err, &fieldErr))
			assert.Equal(t, tc.field, fieldErr.Field)
		})
	}
}

func TestUpdateFullReplace(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	updated, err := svc.Update(context.Background(), 1, EditForm{
		NomeCompleto: "Maria Souza",
		Telefone:     "11 98888-0000",
		Endereco:     "Av. Central, 200",
	})
	require.NoError(t, err)
	require.NotNil(t, repo.updated)
	assert.Equal(t, "Maria Souza", repo.updated.NomeCompleto)
	assert.Equal(t, "Maria Souza", updated.NomeCompleto)
}

func TestUpdateRejectsBlankName(t *testing.T) {
	_, err := NewService(&fakeRepo{}).Update(context.Background(), 1, EditForm{
		NomeCompleto: "   ",
		Telefone:     "1",
		Endereco:     "Rua",
	})
	require.Error(t, err)
	var fieldErr *api.FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "nome_completo", fieldErr.Field)
}
