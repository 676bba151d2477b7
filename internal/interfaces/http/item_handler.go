package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/dlsistema/dl-backend/internal/application/dto"
	"github.com/dlsistema/dl-backend/internal/application/usecase"
)

// ItemHandler maneja las peticiones HTTP de ítems (protegido).
type ItemHandler struct {
	uc *usecase.ItemUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// List lista ítems paginados.
func (h *ItemHandler) List(c *fiber.Ctx) error {
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 100)
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}
	out, err := h.uc.List(c.Context(), skip, limit)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondPage(c, *out, dto.PageMeta{Count: out.Count, Skip: skip, Limit: limit})
}

// Get obtiene un ítem por id.
func (h *ItemHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return respondError(c, fiber.StatusNotFound, "Item não encontrado")
	}
	return respondData(c, fiber.StatusOK, *out)
}

// Create crea un ítem cuyo owner es la cuenta autenticada.
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	ownerID, err := uuid.Parse(GetUserID(c))
	if err != nil {
		return respondError(c, fiber.StatusUnauthorized, msgTokenInvalido)
	}
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	out, err := h.uc.Create(c.Context(), ownerID, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondData(c, fiber.StatusCreated, *out)
}

// Update aplica una actualización parcial.
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return respondError(c, fiber.StatusNotFound, "Item não encontrado")
	}
	return respondData(c, fiber.StatusOK, *out)
}

// Delete elimina un ítem.
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if !deleted {
		return respondError(c, fiber.StatusNotFound, "Item não encontrado")
	}
	return respondData(c, fiber.StatusOK, dto.Message{Message: "Item removido com sucesso"})
}
