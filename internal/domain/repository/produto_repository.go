package repository

import "github.com/dlsistema/dl-backend/internal/domain/entity"

// ProdutoRepository puerto de persistencia para productos del stock.
type ProdutoRepository interface {
	CRUDRepository[entity.Produto]
}
