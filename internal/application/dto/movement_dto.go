package dto

import (
	"time"

	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// AdjustStockRequest body para POST /api/products/:id/adjust-stock.
type AdjustStockRequest struct {
	Delta  int64  `json:"delta"`
	Reason string `json:"reason,omitempty"` // vacío = ADJUSTMENT
	Note   string `json:"note,omitempty"`
}

// BuyRequest body para POST /api/products/:id/buy.
type BuyRequest struct {
	Qty int64 `json:"qty"`
}

// MovementDTO entrada del ledger con los datos del producto dueño.
type MovementDTO struct {
	ID          string    `json:"id"`
	Product     string    `json:"product"`
	ProductSKU  string    `json:"product_sku"`
	ProductName string    `json:"product_name"`
	Delta       int64     `json:"delta"`
	Reason      string    `json:"reason"`
	Note        string    `json:"note"`
	CreatedAt   time.Time `json:"created_at"`
}

// MovementRowToDTO convierte una fila de listado al DTO de respuesta.
func MovementRowToDTO(row repository.MovementRow) MovementDTO {
	m := row.Movement
	return MovementDTO{
		ID:          m.ID,
		Product:     m.ProductID,
		ProductSKU:  row.ProductSKU,
		ProductName: row.ProductName,
		Delta:       m.Delta,
		Reason:      m.Reason,
		Note:        m.Note,
		CreatedAt:   m.CreatedAt,
	}
}
