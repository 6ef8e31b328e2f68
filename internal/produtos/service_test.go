package produtos

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexLPinheiro/SistemaLoja/internal/platform/api"
)

type fakeRepo struct {
	created   *CreateRequest
	updated   *UpdateRequest
	updatedID int64
}

func (f *fakeRepo) List(_ context.Context, _ string) ([]Produto, error) { return nil, nil }

func (f *fakeRepo) Create(_ context.Context, req CreateRequest) (*Produto, error) {
	f.created = &req
	return &Produto{ID: 1, Nome: req.Nome}, nil
}

func (f *fakeRepo) Update(_ context.Context, id int64, req UpdateRequest) error {
	f.updatedID = id
	f.updated = &req
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, _ int64) error { return nil }

func TestCreateRequiresNome(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.Create(context.Background(), Form{
		Nome:        "   ",
		Marca:       "Nike",
		PrecoDolar:  "25,00",
		CategoriaID: 1,
	})
	require.Error(t, err)

	var fieldErr *api.FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "nome", fieldErr.Field)
}

func TestCreateRequiresCategoria(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.Create(context.Background(), Form{
		Nome:       "Tênis",
		Marca:      "Nike",
		PrecoDolar: "25,00",
	})
	require.Error(t, err)

	var fieldErr *api.FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "categoria_id", fieldErr.Field)
}

func TestCreateParsesCommaDecimalPrice(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), Form{
		Nome:           "Tênis ",
		Marca:          " Nike",
		PrecoDolar:     "25,90",
		CategoriaID:    2,
		EstoqueInicial: "10",
	})
	require.NoError(t, err)
	require.NotNil(t, repo.created)
	assert.Equal(t, "Tênis", repo.created.Nome)
	assert.Equal(t, "Nike", repo.created.Marca)
	assert.InDelta(t, 25.90, repo.created.PrecoDolar, 1e-9)
	assert.Equal(t, 10, repo.created.QuantidadeEstoque)
}

func TestUpdateBlankDeltaAddsNothing(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	err := svc.Update(context.Background(), 7, Form{
		Nome:             "Tênis",
		Marca:            "Nike",
		PrecoDolar:       "25,00",
		CategoriaID:      2,
		AdicionarEstoque: "",
	})
	require.NoError(t, err)
	require.NotNil(t, repo.updated)
	assert.Equal(t, int64(7), repo.updatedID)
	assert.Equal(t, 0, repo.updated.AdicionarEstoque)
}

func TestUpdateSendsDelta(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	err := svc.Update(context.Background(), 7, Form{
		Nome:             "Tênis",
		Marca:            "Nike",
		PrecoDolar:       "25,00",
		CategoriaID:      2,
		AdicionarEstoque: "5",
	})
	require.NoError(t, err)
	require.NotNil(t, repo.updated)
	assert.Equal(t, 5, repo.updated.AdicionarEstoque)
}
