package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dlsistema/dl-backend/internal/application/dto"
	"github.com/dlsistema/dl-backend/internal/application/usecase"
)

// ProdutoHandler maneja las peticiones HTTP del stock de productos (protegido).
type ProdutoHandler struct {
	uc *usecase.ProdutoUseCase
}

// NewProdutoHandler construye el handler.
func NewProdutoHandler(uc *usecase.ProdutoUseCase) *ProdutoHandler {
	return &ProdutoHandler{uc: uc}
}

// List godoc
// @Summary      Listar produtos do estoque com paginação
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Param        skip   query  int  false  "Offset"  default(0)
// @Param        limit  query  int  false  "Límite"  default(100)
// @Success      200  {object}  dto.ApiResponse[dto.ProdutosPublic]
// @Router       /api/v1/produtos-estoque/ [get]
func (h *ProdutoHandler) List(c *fiber.Ctx) error {
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

// Get godoc
// @Summary      Obtener produto por ID
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do produto"
// @Success      200  {object}  dto.ApiResponse[dto.ProdutoResponse]
// @Failure      404  {object}  dto.ApiResponse[any]
// @Router       /api/v1/produtos-estoque/{id} [get]
func (h *ProdutoHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return respondError(c, fiber.StatusNotFound, "Produto não encontrado")
	}
	return respondData(c, fiber.StatusOK, *out)
}

// Create godoc
// @Summary      Crear produto
// @Tags         produtos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProdutoRequest  true  "Dados do produto"
// @Success      201  {object}  dto.ApiResponse[dto.ProdutoResponse]
// @Failure      400  {object}  dto.ApiResponse[any]
// @Router       /api/v1/produtos-estoque/ [post]
func (h *ProdutoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondData(c, fiber.StatusCreated, *out)
}

// Update godoc
// @Summary      Actualizar produto (parcial)
// @Tags         produtos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do produto"
// @Param        body  body  dto.UpdateProdutoRequest  true  "Campos a atualizar"
// @Success      200  {object}  dto.ApiResponse[dto.ProdutoResponse]
// @Failure      404  {object}  dto.ApiResponse[any]
// @Router       /api/v1/produtos-estoque/{id} [put]
func (h *ProdutoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return respondError(c, fiber.StatusNotFound, "Produto não encontrado")
	}
	return respondData(c, fiber.StatusOK, *out)
}

// Delete godoc
// @Summary      Eliminar produto
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do produto"
// @Success      200  {object}  dto.ApiResponse[dto.Message]
// @Failure      404  {object}  dto.ApiResponse[any]
// @Router       /api/v1/produtos-estoque/{id} [delete]
func (h *ProdutoHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if !deleted {
		return respondError(c, fiber.StatusNotFound, "Produto não encontrado")
	}
	return respondData(c, fiber.StatusOK, dto.Message{Message: "Produto removido com sucesso"})
}

// Stats devuelve las estadísticas de stock para el dashboard.
// Payload mock: lo consume el frontend tal cual mientras no exista el cálculo real.
func (h *ProdutoHandler) Stats(c *fiber.Ctx) error {
	return respondData(c, fiber.StatusOK, fiber.Map{"total_produtos": 1480})
}
