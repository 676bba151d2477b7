package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dlsistema/dl-backend/internal/application/dto"
	"github.com/dlsistema/dl-backend/internal/domain"
	"github.com/dlsistema/dl-backend/internal/domain/entity"
	"github.com/dlsistema/dl-backend/internal/domain/repository"
)

// ProdutoUseCase CRUD de productos del stock.
//
// Los ids llegan como string desde la ruta; un id que no parsea como UUID se
// trata como "no encontrado" (nunca como error aparte). Los callers existentes
// dependen de esa conflación, no cambiarla.
type ProdutoUseCase struct {
	repo repository.ProdutoRepository
	tx   repository.TxRunner
}

// NewProdutoUseCase construye el caso de uso.
func NewProdutoUseCase(repo repository.ProdutoRepository, tx repository.TxRunner) *ProdutoUseCase {
	return &ProdutoUseCase{repo: repo, tx: tx}
}

// List devuelve la página pedida y el total sin filtrar. Página y total salen
// de la misma transacción para que el count sea coherente con la ventana.
func (uc *ProdutoUseCase) List(ctx context.Context, skip, limit int) (*dto.ProdutosPublic, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}
	var out *dto.ProdutosPublic
	err := uc.tx.Run(ctx, func(repos repository.Repos) error {
		list, total, err := repos.Produtos.List(ctx, skip, limit)
		if err != nil {
			return err
		}
		items := make([]dto.ProdutoResponse, 0, len(list))
		for _, p := range list {
			items = append(items, toProdutoResponse(p))
		}
		out = &dto.ProdutosPublic{Data: items, Count: total}
		return nil
	})
	return out, err
}

// Get busca un producto por id; nil si no existe o el id está malformado.
func (uc *ProdutoUseCase) Get(ctx context.Context, id string) (*dto.ProdutoResponse, error) {
	pid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	p, err := uc.repo.GetByID(ctx, pid)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	resp := toProdutoResponse(p)
	return &resp, nil
}

// Create valida las restricciones de campos, asigna UUID nuevo y persiste.
// Validación y escritura son atómicas: o existen entidad y fila, o ninguna.
func (uc *ProdutoUseCase) Create(ctx context.Context, in dto.CreateProdutoRequest) (*dto.ProdutoResponse, error) {
	if err := validateProduto(in.SKU, in.Nome, in.Preco, in.Estoque); err != nil {
		return nil, err
	}
	now := time.Now()
	p := &entity.Produto{
		ID:        uuid.New(),
		SKU:       in.SKU,
		Nome:      in.Nome,
		Preco:     in.Preco,
		Estoque:   in.Estoque,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := toProdutoResponse(p)
	return &resp, nil
}

// Update aplica una actualización parcial: solo los campos presentes mutan,
// los ausentes conservan el valor almacenado. Lee, mezcla y escribe dentro de
// una única transacción. Devuelve nil si el producto no existe.
func (uc *ProdutoUseCase) Update(ctx context.Context, id string, in dto.UpdateProdutoRequest) (*dto.ProdutoResponse, error) {
	pid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	var out *dto.ProdutoResponse
	err = uc.tx.Run(ctx, func(repos repository.Repos) error {
		p, err := repos.Produtos.GetByID(ctx, pid)
		if err != nil {
			return err
		}
		if p == nil {
			return nil
		}
		if in.SKU != nil {
			p.SKU = *in.SKU
		}
		if in.Nome != nil {
			p.Nome = *in.Nome
		}
		if in.Preco != nil {
			p.Preco = *in.Preco
		}
		if in.Estoque != nil {
			p.Estoque = *in.Estoque
		}
		if err := validateProduto(p.SKU, p.Nome, p.Preco, p.Estoque); err != nil {
			return err
		}
		p.UpdatedAt = time.Now()
		if err := repos.Produtos.Update(ctx, p); err != nil {
			return err
		}
		resp := toProdutoResponse(p)
		out = &resp
		return nil
	})
	return out, err
}

// Delete elimina por id. Idempotente: true si borró, false si no había nada
// (incluido id malformado). Tras un delete exitoso el producto ya no es legible.
func (uc *ProdutoUseCase) Delete(ctx context.Context, id string) (bool, error) {
	pid, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}
	return uc.repo.Delete(ctx, pid)
}

// validateProduto aplica las restricciones de la entidad: sku y nome requeridos,
// estoque no negativo, preco no negativo y con máximo 2 casas decimales.
func validateProduto(sku, nome string, preco decimal.Decimal, estoque int) error {
	if sku == "" {
		return domain.NewValidationError("sku", "é obrigatório")
	}
	if nome == "" {
		return domain.NewValidationError("nome", "é obrigatório")
	}
	if estoque < 0 {
		return domain.NewValidationError("estoque", "não pode ser negativo")
	}
	if preco.IsNegative() {
		return domain.NewValidationError("preco", "não pode ser negativo")
	}
	if preco.Exponent() < -2 {
		return domain.NewValidationError("preco", "máximo de 2 casas decimais")
	}
	return nil
}

func toProdutoResponse(p *entity.Produto) dto.ProdutoResponse {
	return dto.ProdutoResponse{
		ID:      p.ID.String(),
		SKU:     p.SKU,
		Nome:    p.Nome,
		Preco:   p.Preco,
		Estoque: p.Estoque,
	}
}
