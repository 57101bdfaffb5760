package repository

import (
	"time"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// MovementFilter filtros ya saneados para listar movimientos (AND lógico).
// Las fechas comparan por fecha calendario, no por timestamp.
type MovementFilter struct {
	SKU       string     // substring case-insensitive sobre el SKU del producto
	ProductID string     // igualdad exacta
	Reason    string     // igualdad exacta
	DateFrom  *time.Time // created_at::date >= DateFrom
	DateTo    *time.Time // created_at::date <= DateTo
	Limit     int        // ya acotado a [1, 1000]
}

// MovementRow fila de listado: el movimiento más sku y nombre del producto dueño.
type MovementRow struct {
	Movement    entity.StockMovement
	ProductSKU  string
	ProductName string
}

// StockMovementRepository define el puerto de persistencia del ledger (DIP).
// Solo Create y List: el ledger es append-only.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	List(f MovementFilter) ([]MovementRow, error)
}
