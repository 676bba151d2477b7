package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dlsistema/dl-backend/internal/domain"
	"github.com/dlsistema/dl-backend/internal/domain/entity"
	"github.com/dlsistema/dl-backend/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoRepo implementación del puerto ProdutoRepository sobre PostgreSQL (usable con pool o tx).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

// List devuelve la página [skip, skip+limit) en orden de inserción y el total sin filtrar.
func (r *ProdutoRepo) List(ctx context.Context, skip, limit int) ([]*entity.Produto, int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM produtos`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count produtos: %w", err)
	}
	query := `
		SELECT id, sku, nome, preco, estoque, created_at, updated_at
		FROM produtos ORDER BY created_at, id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, skip)
	if err != nil {
		return nil, 0, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Produto
	for rows.Next() {
		var p entity.Produto
		if err := rows.Scan(&p.ID, &p.SKU, &p.Nome, &p.Preco, &p.Estoque, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, &p)
	}
	return list, total, rows.Err()
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (r *ProdutoRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Produto, error) {
	query := `
		SELECT id, sku, nome, preco, estoque, created_at, updated_at
		FROM produtos WHERE id = $1`
	var p entity.Produto
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.SKU, &p.Nome, &p.Preco, &p.Estoque, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return &p, nil
}

// Create persiste un nuevo producto.
func (r *ProdutoRepo) Create(ctx context.Context, p *entity.Produto) error {
	query := `
		INSERT INTO produtos (id, sku, nome, preco, estoque, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, p.ID, p.SKU, p.Nome, p.Preco, p.Estoque, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// Update sobreescribe la fila con la entidad recibida (el merge parcial lo hace el use case).
func (r *ProdutoRepo) Update(ctx context.Context, p *entity.Produto) error {
	query := `
		UPDATE produtos SET sku = $2, nome = $3, preco = $4, estoque = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, p.ID, p.SKU, p.Nome, p.Preco, p.Estoque, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update produto: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID; true si borró una fila.
func (r *ProdutoRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM produtos WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete produto: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
