package dto

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Totales globales, actividad reciente del ledger, top-5 de stock bajo y
// pronóstico de agotamiento por SKU.
type DashboardSummaryDTO struct {
	TotalProducts   int64 `json:"total_products"`
	TotalStock      int64 `json:"total_stock"`
	TotalValue      int64 `json:"total_value"` // suma de qty * price
	MovementsLast7d int64 `json:"movements_last_7d"`

	// Hasta 5 productos con qty <= 5, orden ascendente por qty
	LowStock []LowStockDTO `json:"low_stock"`

	// Hasta 5 SKUs más cercanos a agotarse (days_to_zero ascendente)
	Forecast []ForecastDTO `json:"forecast"`
}

// LowStockDTO producto del widget de stock bajo.
type LowStockDTO struct {
	ID     string `json:"id"`
	SKU    string `json:"sku"`
	Name   string `json:"name"`
	Qty    int64  `json:"qty"`
	Status string `json:"status"`
}

// ForecastDTO proyección de agotamiento de un SKU según la tasa de salida
// de los últimos 30 días.
type ForecastDTO struct {
	SKU           string  `json:"sku"`
	Name          string  `json:"name"`
	AvgDailyUsage float64 `json:"avg_daily_usage"` // redondeado a 2 decimales
	DaysToZero    float64 `json:"days_to_zero"`    // redondeado a 1 decimal
	CurrentQty    int64   `json:"current_qty"`
}
