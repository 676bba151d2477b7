package http

import "github.com/gofiber/fiber/v2"

// PanelHandler sirve los payloads de los paneles (gestor, vendedor, anuncios).
// Son datos mock con la estructura exacta que el frontend espera; el cálculo
// real vive fuera de este core y se conectará aquí cuando exista.
type PanelHandler struct{}

// NewPanelHandler construye el handler.
func NewPanelHandler() *PanelHandler {
	return &PanelHandler{}
}

// DashboardMetrics métricas principales del dashboard del gestor.
func (h *PanelHandler) DashboardMetrics(c *fiber.Ctx) error {
	return respondData(c, fiber.StatusOK, fiber.Map{
		"faturamento":        125300.50,
		"total_clientes":     212,
		"vendas_hoje":        34,
		"taxa_conversao":     81.2,
		"satisfacao_cliente": 96.5,
		"eficiencia_ia":      91.3,
	})
}

// DashboardStats series para los gráficos del dashboard del gestor.
func (h *PanelHandler) DashboardStats(c *fiber.Ctx) error {
	return respondData(c, fiber.StatusOK, fiber.Map{
		"evolucao_semanal": []fiber.Map{
			{"name": "Seg", "vendas": 10, "conversao": 60},
			{"name": "Ter", "vendas": 15, "conversao": 65},
			{"name": "Qua", "vendas": 12, "conversao": 70},
			{"name": "Qui", "vendas": 20, "conversao": 75},
			{"name": "Sex", "vendas": 25, "conversao": 80},
		},
		"distribuicao_canais": []fiber.Map{
			{"name": "WhatsApp", "value": 450, "color": "#25D366"},
			{"name": "Mercado Livre", "value": 320, "color": "#FFE600"},
			{"name": "Venda Direta", "value": 280, "color": "#3483FA"},
		},
		"performance_produtos": []fiber.Map{
			{"produto": "Capô Golf", "vendas": 55, "margem": 35},
			{"produto": "Farol Civic", "vendas": 42, "margem": 40},
			{"produto": "Parachoque Corolla", "vendas": 31, "margem": 30},
		},
	})
}

// VendedorResumoDia resumen del día para un vendedor.
func (h *PanelHandler) VendedorResumoDia(c *fiber.Ctx) error {
	return respondData(c, fiber.StatusOK, fiber.Map{
		"meta_diaria":        5000.00,
		"vendas_realizadas":  3850.50,
		"orcamentos_enviados": 12,
		"novos_clientes":     3,
	})
}

// AnunciosResumo resumen de performance del panel de anuncios.
func (h *PanelHandler) AnunciosResumo(c *fiber.Ctx) error {
	return respondData(c, fiber.StatusOK, fiber.Map{
		"investimento_total": 1500.75,
		"cliques":            3450,
		"conversoes":         89,
		"cpa":                16.86,
	})
}
