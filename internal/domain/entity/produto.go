package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Produto representa un producto del stock (panel del gestor).
// Preco es NUMERIC(12,2); Estoque nunca es negativo.
type Produto struct {
	ID        uuid.UUID
	SKU       string
	Nome      string
	Preco     decimal.Decimal
	Estoque   int
	CreatedAt time.Time
	UpdatedAt time.Time
}
