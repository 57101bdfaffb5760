package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/stock"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
)

// StockHandler maneja los endpoints del motor de stock (ajuste manual y venta).
type StockHandler struct {
	uc *stock.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// AdjustStock godoc
// @Summary      Ajustar stock de un producto
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del producto"
// @Param        body  body  dto.AdjustStockRequest  true  "delta (entero != 0), reason (opcional, default ADJUSTMENT), note (opcional)"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/adjust-stock [post]
func (h *StockHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, movement, err := h.uc.AdjustStock(c.Context(), c.Params("id"), stock.AdjustStockInput{
		Delta:  in.Delta,
		Reason: in.Reason,
		Note:   in.Note,
	})
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "delta debe ser entero distinto de cero y reason una razón conocida"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		if err == domain.ErrNegativeStock {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NEGATIVE_STOCK", Message: "el ajuste dejaría el stock negativo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	mov := dto.MovementDTO{
		ID:          movement.ID,
		Product:     movement.ProductID,
		ProductSKU:  product.SKU,
		ProductName: product.Name,
		Delta:       movement.Delta,
		Reason:      movement.Reason,
		Note:        movement.Note,
		CreatedAt:   movement.CreatedAt,
	}
	return c.JSON(fiber.Map{
		"message":  "Ajuste aplicado",
		"product":  dto.ProductToDTO(product),
		"movement": mov,
	})
}

// Buy godoc
// @Summary      Registrar una venta de punto de venta
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        id    path  string          true  "ID del producto"
// @Param        body  body  dto.BuyRequest  true  "qty (entero > 0)"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/buy [post]
func (h *StockHandler) Buy(c *fiber.Ctx) error {
	var in dto.BuyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, movement, err := h.uc.Buy(c.Context(), c.Params("id"), in.Qty)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "qty debe ser entero positivo"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		if err == domain.ErrInsufficientStock {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	mov := dto.MovementDTO{
		ID:          movement.ID,
		Product:     movement.ProductID,
		ProductSKU:  product.SKU,
		ProductName: product.Name,
		Delta:       movement.Delta,
		Reason:      movement.Reason,
		Note:        movement.Note,
		CreatedAt:   movement.CreatedAt,
	}
	return c.JSON(fiber.Map{
		"message":   "Compra registrada",
		"new_stock": product.Qty,
		"status":    product.Status,
		"movement":  mov,
	})
}
