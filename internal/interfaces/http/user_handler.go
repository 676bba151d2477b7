package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dlsistema/dl-backend/internal/application/dto"
	"github.com/dlsistema/dl-backend/internal/application/usecase"
)

// UserHandler administración de cuentas (restringido al panel del gestor).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List lista cuentas paginadas.
func (h *UserHandler) List(c *fiber.Ctx) error {
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

// Get obtiene una cuenta por id.
func (h *UserHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return respondError(c, fiber.StatusNotFound, "Usuário não encontrado")
	}
	return respondData(c, fiber.StatusOK, *out)
}

// Create crea una cuenta nueva (password se hashea en el use case).
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondData(c, fiber.StatusCreated, *out)
}

// Update aplica una actualización parcial de la cuenta.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return respondError(c, fiber.StatusNotFound, "Usuário não encontrado")
	}
	return respondData(c, fiber.StatusOK, *out)
}

// Delete elimina una cuenta.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if !deleted {
		return respondError(c, fiber.StatusNotFound, "Usuário não encontrado")
	}
	return respondData(c, fiber.StatusOK, dto.Message{Message: "Usuário removido com sucesso"})
}
