package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/dlsistema/dl-backend/internal/domain/role"
)

// User representa una cuenta del sistema con acceso a uno de los paneles.
// Email se persiste siempre en minúsculas y es único de forma case-insensitive.
// Role es siempre uno de los valores canónicos (GESTOR, VENDEDOR, ANUNCIOS).
type User struct {
	ID             uuid.UUID
	Email          string
	HashedPassword string // hash bcrypt, nunca el password plano
	FullName       string
	IsActive       bool
	IsSuperuser    bool
	Role           role.Role
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
