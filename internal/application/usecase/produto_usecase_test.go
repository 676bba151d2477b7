package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlsistema/dl-backend/internal/application/dto"
	"github.com/dlsistema/dl-backend/internal/application/usecase"
	"github.com/dlsistema/dl-backend/internal/domain"
	"github.com/dlsistema/dl-backend/internal/domain/entity"
	"github.com/dlsistema/dl-backend/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: repositorio de productos + tx runner
// ──────────────────────────────────────────────────────────────────────────────

// fakeProdutoRepo implementa repository.ProdutoRepository en memoria,
// conservando el orden de inserción para la paginación.
type fakeProdutoRepo struct {
	order []uuid.UUID
	byID  map[uuid.UUID]*entity.Produto
}

func newFakeProdutoRepo() *fakeProdutoRepo {
	return &fakeProdutoRepo{byID: make(map[uuid.UUID]*entity.Produto)}
}

func (r *fakeProdutoRepo) List(_ context.Context, skip, limit int) ([]*entity.Produto, int, error) {
	total := len(r.order)
	if skip >= total {
		return nil, total, nil
	}
	end := skip + limit
	if end > total {
		end = total
	}
	var out []*entity.Produto
	for _, id := range r.order[skip:end] {
		cp := *r.byID[id]
		out = append(out, &cp)
	}
	return out, total, nil
}

func (r *fakeProdutoRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Produto, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProdutoRepo) Create(_ context.Context, p *entity.Produto) error {
	cp := *p
	r.byID[p.ID] = &cp
	r.order = append(r.order, p.ID)
	return nil
}

func (r *fakeProdutoRepo) Update(_ context.Context, p *entity.Produto) error {
	if _, ok := r.byID[p.ID]; !ok {
		return nil
	}
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *fakeProdutoRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// fakeTxRunner ejecuta el callback directamente sobre los fakes; sin
// transacción real, suficiente para la semántica de los use cases.
type fakeTxRunner struct {
	produtos repository.ProdutoRepository
}

func (tx *fakeTxRunner) Run(_ context.Context, fn func(repos repository.Repos) error) error {
	return fn(repository.Repos{Produtos: tx.produtos})
}

func buildProdutoUC() (*usecase.ProdutoUseCase, *fakeProdutoRepo) {
	repo := newFakeProdutoRepo()
	return usecase.NewProdutoUseCase(repo, &fakeTxRunner{produtos: repo}), repo
}

func validCreate() dto.CreateProdutoRequest {
	return dto.CreateProdutoRequest{
		SKU:     "CAP-GOLF-01",
		Nome:    "Capô Golf",
		Preco:   decimal.NewFromFloat(350.50),
		Estoque: 12,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create — validación atómica
// ──────────────────────────────────────────────────────────────────────────────

func TestProdutoCreate_Valido(t *testing.T) {
	uc, repo := buildProdutoUC()

	out, err := uc.Create(context.Background(), validCreate())
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.ID, "debe asignarse un id nuevo")
	assert.Equal(t, "CAP-GOLF-01", out.SKU)
	assert.True(t, decimal.NewFromFloat(350.50).Equal(out.Preco))
	assert.Len(t, repo.order, 1)
}

func TestProdutoCreate_Invalido_NoPersisteNada(t *testing.T) {
	uc, repo := buildProdutoUC()

	cases := []struct {
		name  string
		mut   func(*dto.CreateProdutoRequest)
		field string
	}{
		{"sku vacío", func(in *dto.CreateProdutoRequest) { in.SKU = "" }, "sku"},
		{"nome vacío", func(in *dto.CreateProdutoRequest) { in.Nome = "" }, "nome"},
		{"estoque negativo", func(in *dto.CreateProdutoRequest) { in.Estoque = -1 }, "estoque"},
		{"preco negativo", func(in *dto.CreateProdutoRequest) { in.Preco = decimal.NewFromFloat(-0.01) }, "preco"},
		{"preco con 3 decimales", func(in *dto.CreateProdutoRequest) { in.Preco = decimal.NewFromFloat(10.999) }, "preco"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validCreate()
			tc.mut(&in)

			out, err := uc.Create(context.Background(), in)
			require.Error(t, err)
			assert.Nil(t, out)

			ve, ok := domain.AsValidationError(err)
			require.True(t, ok, "debe ser un error de validación")
			assert.Equal(t, tc.field, ve.Field)
		})
	}

	// Ninguna creación fallida dejó rastro
	assert.Empty(t, repo.order, "validación y escritura son atómicas")
}

// ──────────────────────────────────────────────────────────────────────────────
// Get — id malformado se trata como no encontrado
// ──────────────────────────────────────────────────────────────────────────────

func TestProdutoGet_IDMalformado_NilSinError(t *testing.T) {
	uc, _ := buildProdutoUC()

	out, err := uc.Get(context.Background(), "no-soy-un-uuid")
	assert.NoError(t, err)
	assert.Nil(t, out)
}

func TestProdutoGet_Inexistente_NilSinError(t *testing.T) {
	uc, _ := buildProdutoUC()

	out, err := uc.Get(context.Background(), uuid.NewString())
	assert.NoError(t, err)
	assert.Nil(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update — parcial: los campos ausentes conservan su valor
// ──────────────────────────────────────────────────────────────────────────────

func TestProdutoUpdate_Parcial_PreservaCamposAusentes(t *testing.T) {
	uc, _ := buildProdutoUC()

	created, err := uc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	novoEstoque := 99
	out, err := uc.Update(context.Background(), created.ID, dto.UpdateProdutoRequest{
		Estoque: &novoEstoque,
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, 99, out.Estoque)
	assert.Equal(t, "CAP-GOLF-01", out.SKU, "sku ausente no muta")
	assert.Equal(t, "Capô Golf", out.Nome, "nome ausente no muta")
	assert.True(t, decimal.NewFromFloat(350.50).Equal(out.Preco), "preco ausente no muta")
}

func TestProdutoUpdate_Invalido_NoMuta(t *testing.T) {
	uc, _ := buildProdutoUC()

	created, err := uc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	negativo := -5
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateProdutoRequest{Estoque: &negativo})
	require.Error(t, err)

	// El producto conserva su estado original
	got, err := uc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, got.Estoque)
}

func TestProdutoUpdate_IDMalformadoOInexistente_NilSinError(t *testing.T) {
	uc, _ := buildProdutoUC()
	sku := "OTRO"

	out, err := uc.Update(context.Background(), "basura", dto.UpdateProdutoRequest{SKU: &sku})
	assert.NoError(t, err)
	assert.Nil(t, out)

	out, err = uc.Update(context.Background(), uuid.NewString(), dto.UpdateProdutoRequest{SKU: &sku})
	assert.NoError(t, err)
	assert.Nil(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete — idempotente; tras borrar, el producto no es legible
// ──────────────────────────────────────────────────────────────────────────────

func TestProdutoDelete_IdempotenteYGetPosterior(t *testing.T) {
	uc, _ := buildProdutoUC()

	created, err := uc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	deleted, err := uc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, deleted, "primer delete borra")

	deleted, err = uc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, deleted, "segundo delete no encuentra nada")

	got, err := uc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "tras el delete el producto no es legible")
}

func TestProdutoDelete_IDMalformado_FalseSinError(t *testing.T) {
	uc, _ := buildProdutoUC()

	deleted, err := uc.Delete(context.Background(), "no-uuid")
	assert.NoError(t, err)
	assert.False(t, deleted)
}

// ──────────────────────────────────────────────────────────────────────────────
// List — total sin filtrar, independiente de la ventana
// ──────────────────────────────────────────────────────────────────────────────

func TestProdutoList_TotalIndependienteDeLaVentana(t *testing.T) {
	uc, _ := buildProdutoUC()

	for i := 0; i < 5; i++ {
		in := validCreate()
		in.SKU = in.SKU + "-" + string(rune('A'+i))
		_, err := uc.Create(context.Background(), in)
		require.NoError(t, err)
	}

	out, err := uc.List(context.Background(), 0, 2)
	require.NoError(t, err)
	assert.Len(t, out.Data, 2)
	assert.Equal(t, 5, out.Count, "el count es el total sin filtrar")

	out, err = uc.List(context.Background(), 4, 10)
	require.NoError(t, err)
	assert.Len(t, out.Data, 1)
	assert.Equal(t, 5, out.Count)

	// skip más allá del final: página vacía, mismo total
	out, err = uc.List(context.Background(), 50, 10)
	require.NoError(t, err)
	assert.Empty(t, out.Data)
	assert.Equal(t, 5, out.Count)
}
