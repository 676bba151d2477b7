package repository

import (
	"context"

	"github.com/dlsistema/dl-backend/internal/domain/entity"
)

// UserRepository puerto de persistencia para cuentas.
type UserRepository interface {
	CRUDRepository[entity.User]

	// GetByEmail busca por email en minúsculas; (nil, nil) si no existe.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
