package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/dlsistema/dl-backend/internal/application/auth"
	"github.com/dlsistema/dl-backend/internal/application/dto"
	"github.com/dlsistema/dl-backend/internal/domain"
)

// AuthHandler maneja el login con gate de perfil y el token endpoint OAuth2.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Login com validação de perfil
// @Tags         login
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password, profile"
// @Success      200   {object}  dto.ApiResponse[dto.LoginResponse]
// @Failure      400   {object}  dto.ApiResponse[any]
// @Failure      403   {object}  dto.ApiResponse[any]
// @Router       /api/v1/login/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if in.Email == "" || in.Password == "" {
		return respondError(c, fiber.StatusBadRequest, msgCredenciaisInvalidas)
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrProfileMismatch) {
			// 403 con el perfil que el usuario INTENTÓ abrir; es deliberadamente
			// más específico que el error de credenciales.
			msg := fmt.Sprintf("Acesso negado. Você não tem permissão para o perfil de %s.", capitalize(in.Profile))
			return respondError(c, fiber.StatusForbidden, msg)
		}
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return respondError(c, fiber.StatusBadRequest, msgCredenciaisInvalidas)
		}
		return respondDomainError(c, err)
	}
	return respondData(c, fiber.StatusOK, *out)
}

// AccessToken godoc
// @Summary      Token endpoint compatible OAuth2 (form username/password)
// @Tags         login
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "email"
// @Param        password  formData  string  true  "password"
// @Success      200  {object}  dto.Token
// @Failure      400  {object}  dto.ApiResponse[any]
// @Router       /api/v1/login/access-token [post]
func (h *AuthHandler) AccessToken(c *fiber.Ctx) error {
	username := c.FormValue("username")
	pass := c.FormValue("password")
	if username == "" || pass == "" {
		return respondError(c, fiber.StatusBadRequest, msgCredenciaisInvalidas)
	}
	out, err := h.uc.IssueToken(c.Context(), username, pass)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return respondError(c, fiber.StatusBadRequest, msgCredenciaisInvalidas)
		}
		return respondDomainError(c, err)
	}
	// Forma cruda {access_token, token_type}: los clientes OAuth2 no esperan sobre.
	return c.Status(fiber.StatusOK).JSON(out)
}
