package entity

import (
	"time"

	"github.com/google/uuid"
)

// Item es un ítem genérico perteneciente a una cuenta.
type Item struct {
	ID          uuid.UUID
	Title       string
	Description string
	OwnerID     uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
