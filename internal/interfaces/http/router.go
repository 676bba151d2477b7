package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dlsistema/dl-backend/internal/application/auth"
	"github.com/dlsistema/dl-backend/internal/application/usecase"
	"github.com/dlsistema/dl-backend/internal/domain/role"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ProdutoUC *usecase.ProdutoUseCase
	ItemUC    *usecase.ItemUseCase
	UserUC    *usecase.UserUseCase
	JWTSecret string
}

// Router registra las rutas de la API bajo /api/v1, con los mismos prefijos
// que consume el frontend.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Login (público)
	login := api.Group("/login")
	authHandler := NewAuthHandler(deps.AuthUC)
	login.Post("/auth/login", authHandler.Login)
	login.Post("/access-token", authHandler.AccessToken)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("", AuthMiddleware(deps.JWTSecret))

	// Produtos del stock (protegido). /estatisticas antes de /:id para que no capture la ruta.
	produtos := protected.Group("/produtos-estoque")
	produtoHandler := NewProdutoHandler(deps.ProdutoUC)
	produtos.Get("/", produtoHandler.List)
	produtos.Post("/", produtoHandler.Create)
	produtos.Get("/estatisticas", produtoHandler.Stats)
	produtos.Get("/:id", produtoHandler.Get)
	produtos.Put("/:id", produtoHandler.Update)
	produtos.Delete("/:id", produtoHandler.Delete)

	// Items (protegido)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)
	items.Get("/:id", itemHandler.Get)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	// Cuentas (solo panel del gestor)
	users := protected.Group("/users", RequireRole(role.Gestor))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.Get)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Paneles: cada uno restringido a su perfil; el gestor entra a todos.
	panelHandler := NewPanelHandler()

	dashboard := protected.Group("/dashboard", RequireRole(role.Gestor))
	dashboard.Get("/metricas", panelHandler.DashboardMetrics)
	dashboard.Get("/estatisticas", panelHandler.DashboardStats)

	vendedor := protected.Group("/vendedor", RequireRole(role.Vendedor, role.Gestor))
	vendedor.Get("/:vendedor_id/resumo-dia", panelHandler.VendedorResumoDia)

	anuncios := protected.Group("/anuncios", RequireRole(role.Anuncios, role.Gestor))
	anuncios.Get("/resumo", panelHandler.AnunciosResumo)
}
