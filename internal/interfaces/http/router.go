package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-ledger-api/internal/application/movements"
	"github.com/jhoicas/stock-ledger-api/internal/application/reports"
	"github.com/jhoicas/stock-ledger-api/internal/application/stock"
	"github.com/jhoicas/stock-ledger-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	StockUC     *stock.StockUseCase
	MovementsUC *movements.QueryUseCase
	DashboardUC *reports.DashboardUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products (CRUD pass-through; el stock solo cambia vía el motor de stock)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Stock engine (mutaciones atómicas sobre el ledger)
	stockHandler := NewStockHandler(deps.StockUC)
	products.Post("/:id/adjust-stock", stockHandler.AdjustStock)
	products.Post("/:id/buy", stockHandler.Buy)

	// Ledger de movimientos (read-only)
	movementHandler := NewMovementHandler(deps.MovementsUC)
	api.Get("/movements", movementHandler.List)

	// Dashboard (read-only)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/summary", dashboardHandler.GetSummary)
}
