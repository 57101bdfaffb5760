package dto

import (
	"time"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// CreateProductRequest body para POST /api/products. Qty es el baseline del
// ledger (por defecto 0); el status se deriva, no se acepta del cliente.
type CreateProductRequest struct {
	SKU   string `json:"sku"`
	Name  string `json:"name"`
	Qty   int64  `json:"qty"`
	Price int64  `json:"price"`
}

// UpdateProductRequest body para PUT /api/products/:id. El stock no se edita
// aquí: qty solo cambia vía movimientos del motor de stock.
type UpdateProductRequest struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// ProductDTO representación de un producto en respuestas HTTP.
type ProductDTO struct {
	ID        string    `json:"id"`
	SKU       string    `json:"sku"`
	Name      string    `json:"name"`
	Qty       int64     `json:"qty"`
	Status    string    `json:"status"`
	Price     int64     `json:"price"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductToDTO convierte la entidad al DTO de respuesta.
func ProductToDTO(p *entity.Product) ProductDTO {
	return ProductDTO{
		ID:        p.ID,
		SKU:       p.SKU,
		Name:      p.Name,
		Qty:       p.Qty,
		Status:    p.Status,
		Price:     p.Price,
		UpdatedAt: p.UpdatedAt,
	}
}
