package repository

import (
	"context"

	"github.com/google/uuid"
)

// CRUDRepository es el contrato genérico de persistencia por entidad.
// Todas las implementaciones cumplen:
//
//   - List devuelve la página [skip, skip+limit) en orden de inserción junto
//     con el total SIN filtrar, independiente de la ventana pedida.
//   - GetByID devuelve (nil, nil) si no existe; ausencia no es error.
//   - Create persiste la entidad ya validada de forma atómica.
//   - Update sobreescribe la fila completa con la entidad recibida; el merge
//     parcial campo a campo lo hace el use case dentro de una transacción.
//   - Delete es idempotente: true si borró, false si no había nada que borrar.
type CRUDRepository[T any] interface {
	List(ctx context.Context, skip, limit int) ([]*T, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)
	Create(ctx context.Context, e *T) error
	Update(ctx context.Context, e *T) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// Repos agrupa los repositorios atados a una misma transacción.
// Lo entrega el TxRunner al callback de cada operación transaccional.
type Repos struct {
	Users    UserRepository
	Produtos ProdutoRepository
	Items    ItemRepository
}

// TxRunner ejecuta un callback con repositorios atados a una transacción única.
// Commit si fn devuelve nil; rollback en caso contrario.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos Repos) error) error
}
