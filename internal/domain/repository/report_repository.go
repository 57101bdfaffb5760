package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StockTotals agregados globales del inventario.
type StockTotals struct {
	TotalProducts int64
	TotalStock    int64
	TotalValue    int64 // suma de qty * price
}

// LowStockRow producto con stock bajo para el widget del dashboard.
type LowStockRow struct {
	ID     string
	SKU    string
	Name   string
	Qty    int64
	Status string
}

// ProductOutflow salida acumulada (suma de deltas negativos) de un producto
// dentro de la ventana de pronóstico. TotalOut es <= 0; viene como NUMERIC de
// la BD y se escanea a decimal para la aritmética del pronóstico.
type ProductOutflow struct {
	ProductID string
	SKU       string
	Name      string
	Qty       int64
	TotalOut  decimal.Decimal
}

// ReportRepository consultas read-only para el dashboard. No toma locks: puede
// ver una vista ligeramente desfasada bajo escrituras concurrentes, pero nunca
// una mutación a medias (cada mutación es una sola transacción).
type ReportRepository interface {
	GetStockTotals(ctx context.Context) (StockTotals, error)
	CountMovementsSince(ctx context.Context, since time.Time) (int64, error)
	GetLowStock(ctx context.Context, maxQty int64, limit int) ([]LowStockRow, error)
	GetOutflowSince(ctx context.Context, since time.Time) ([]ProductOutflow, error)
}
