package http

import (
	"errors"
	"strings"
	"unicode"

	"github.com/gofiber/fiber/v2"

	"github.com/dlsistema/dl-backend/internal/application/dto"
	"github.com/dlsistema/dl-backend/internal/domain"
)

// Mensajes de error visibles para el usuario. Nunca exponen detalle interno
// (SQL, stack traces); un fallo de infraestructura responde errInterno.
const (
	msgCredenciaisInvalidas = "Credenciais inválidas"
	msgTokenInvalido        = "Token inválido ou expirado"
	msgErroInterno          = "Erro interno do servidor"
)

// respondData envía el sobre de éxito {ok:true, data, error:null}.
func respondData[T any](c *fiber.Ctx, status int, data T) error {
	return c.Status(status).JSON(dto.Success(data, nil))
}

// respondPage envía el sobre de éxito con metadatos de paginación.
func respondPage[T any](c *fiber.Ctx, data T, meta dto.PageMeta) error {
	return c.Status(fiber.StatusOK).JSON(dto.Success(data, &meta))
}

// respondError envía el sobre de error {ok:false, data:null, error}.
func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.Failure[any](message))
}

// respondDomainError mapea errores de dominio no manejados explícitamente por
// el handler: violaciones de validación (400, con el campo ofensor), email
// duplicado (409) y cualquier otro fallo como error interno genérico (500).
func respondDomainError(c *fiber.Ctx, err error) error {
	if ve, ok := domain.AsValidationError(err); ok {
		return respondError(c, fiber.StatusBadRequest, ve.Error())
	}
	if errors.Is(err, domain.ErrEmailAlreadyExists) {
		return respondError(c, fiber.StatusConflict, "O email já está registrado")
	}
	return respondError(c, fiber.StatusInternalServerError, msgErroInterno)
}

// capitalize pone la primera letra en mayúscula y el resto en minúsculas,
// como Python str.capitalize (el mensaje de ProfileMismatch depende de esto).
func capitalize(s string) string {
	s = strings.ToLower(s)
	runes := []rune(s)
	if len(runes) > 0 {
		runes[0] = unicode.ToUpper(runes[0])
	}
	return string(runes)
}
