package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dlsistema/dl-backend/internal/application/dto"
	"github.com/dlsistema/dl-backend/internal/domain"
	"github.com/dlsistema/dl-backend/internal/domain/entity"
	"github.com/dlsistema/dl-backend/internal/domain/repository"
)

const itemMaxLen = 255

// ItemUseCase CRUD de ítems. Mismo contrato que productos:
// id malformado = ausente, update parcial en transacción, delete idempotente.
type ItemUseCase struct {
	repo repository.ItemRepository
	tx   repository.TxRunner
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository, tx repository.TxRunner) *ItemUseCase {
	return &ItemUseCase{repo: repo, tx: tx}
}

// List devuelve la página y el total sin filtrar desde una misma transacción.
func (uc *ItemUseCase) List(ctx context.Context, skip, limit int) (*dto.ItemsPublic, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}
	var out *dto.ItemsPublic
	err := uc.tx.Run(ctx, func(repos repository.Repos) error {
		list, total, err := repos.Items.List(ctx, skip, limit)
		if err != nil {
			return err
		}
		items := make([]dto.ItemResponse, 0, len(list))
		for _, it := range list {
			items = append(items, toItemResponse(it))
		}
		out = &dto.ItemsPublic{Data: items, Count: total}
		return nil
	})
	return out, err
}

// Get busca por id; nil si no existe o el id está malformado.
func (uc *ItemUseCase) Get(ctx context.Context, id string) (*dto.ItemResponse, error) {
	iid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	it, err := uc.repo.GetByID(ctx, iid)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, nil
	}
	resp := toItemResponse(it)
	return &resp, nil
}

// Create valida y persiste un ítem del owner autenticado.
func (uc *ItemUseCase) Create(ctx context.Context, ownerID uuid.UUID, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if err := validateItem(in.Title, in.Description); err != nil {
		return nil, err
	}
	now := time.Now()
	it := &entity.Item{
		ID:          uuid.New(),
		Title:       in.Title,
		Description: in.Description,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, it); err != nil {
		return nil, err
	}
	resp := toItemResponse(it)
	return &resp, nil
}

// Update aplica una actualización parcial dentro de una transacción.
// Devuelve nil si el ítem no existe. El owner no es modificable.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	iid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	var out *dto.ItemResponse
	err = uc.tx.Run(ctx, func(repos repository.Repos) error {
		it, err := repos.Items.GetByID(ctx, iid)
		if err != nil {
			return err
		}
		if it == nil {
			return nil
		}
		if in.Title != nil {
			it.Title = *in.Title
		}
		if in.Description != nil {
			it.Description = *in.Description
		}
		if err := validateItem(it.Title, it.Description); err != nil {
			return err
		}
		it.UpdatedAt = time.Now()
		if err := repos.Items.Update(ctx, it); err != nil {
			return err
		}
		resp := toItemResponse(it)
		out = &resp
		return nil
	})
	return out, err
}

// Delete elimina por id; true si borró, false si no había nada.
func (uc *ItemUseCase) Delete(ctx context.Context, id string) (bool, error) {
	iid, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}
	return uc.repo.Delete(ctx, iid)
}

func validateItem(title, description string) error {
	if title == "" {
		return domain.NewValidationError("title", "é obrigatório")
	}
	if len(title) > itemMaxLen {
		return domain.NewValidationError("title", "máximo de 255 caracteres")
	}
	if len(description) > itemMaxLen {
		return domain.NewValidationError("description", "máximo de 255 caracteres")
	}
	return nil
}

func toItemResponse(it *entity.Item) dto.ItemResponse {
	return dto.ItemResponse{
		ID:          it.ID.String(),
		Title:       it.Title,
		Description: it.Description,
		OwnerID:     it.OwnerID.String(),
	}
}
