package repository

import "github.com/dlsistema/dl-backend/internal/domain/entity"

// ItemRepository puerto de persistencia para ítems.
type ItemRepository interface {
	CRUDRepository[entity.Item]
}
