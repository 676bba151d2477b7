package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/dlsistema/dl-backend/internal/domain/role"
	"github.com/dlsistema/dl-backend/pkg/jwt"
)

// Locals keys para los claims del token en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// AuthMiddleware valida el Bearer Token JWT y extrae subject (id de cuenta) y
// rol a c.Locals. Cualquier fallo de firma, formato o expiración responde 401
// con el sobre uniforme; el token comprometido solo muere por TTL.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return respondError(c, fiber.StatusUnauthorized, "Authorization header obrigatório")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return respondError(c, fiber.StatusUnauthorized, "Formato esperado: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return respondError(c, fiber.StatusUnauthorized, msgTokenInvalido)
		}
		subject, userRole, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return respondError(c, fiber.StatusUnauthorized, msgTokenInvalido)
		}
		c.Locals(LocalUserID, subject)
		c.Locals(LocalRole, userRole)
		return c.Next()
	}
}

// RequireRole autoriza el acceso a un panel: el rol del token debe ser uno de
// los permitidos. Debe usarse DESPUÉS de AuthMiddleware.
func RequireRole(allowed ...role.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		r := GetRole(c)
		if r == "" {
			return respondError(c, fiber.StatusUnauthorized, msgTokenInvalido)
		}
		current := role.Role(r)
		for _, a := range allowed {
			if current == a {
				return c.Next()
			}
		}
		return respondError(c, fiber.StatusForbidden, "Acesso negado para este painel")
	}
}

// GetUserID devuelve el subject del token (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol del token (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
