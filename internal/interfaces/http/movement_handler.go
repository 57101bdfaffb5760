package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/movements"
)

// MovementHandler maneja el listado read-only del ledger de movimientos.
type MovementHandler struct {
	uc *movements.QueryUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *movements.QueryUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// List godoc
// @Summary      Listar movimientos del ledger, más reciente primero
// @Description  Filtros opcionales combinados con AND. Fechas mal formadas se
// @Description  ignoran y un limit inválido cae al default (200), nunca falla
// @Description  la petición por un filtro malo.
// @Tags         movements
// @Produce      json
// @Param        sku        query  string  false  "substring del SKU (case-insensitive)"
// @Param        product    query  string  false  "ID exacto del producto"
// @Param        reason     query  string  false  "razón exacta (ADJUSTMENT, DAMAGE, RETURN, COUNT)"
// @Param        date_from  query  string  false  "fecha YYYY-MM-DD (inclusive)"
// @Param        date_to    query  string  false  "fecha YYYY-MM-DD (inclusive)"
// @Param        limit      query  int     false  "máximo de filas, acotado a [1,1000], default 200"
// @Success      200  {array}  dto.MovementDTO
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	rows, err := h.uc.ListMovements(c.Context(), movements.MovementQuery{
		SKU:       c.Query("sku"),
		ProductID: c.Query("product"),
		Reason:    c.Query("reason"),
		DateFrom:  c.Query("date_from"),
		DateTo:    c.Query("date_to"),
		Limit:     c.Query("limit"),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	list := make([]dto.MovementDTO, 0, len(rows))
	for _, row := range rows {
		list = append(list, dto.MovementRowToDTO(row))
	}
	return c.JSON(list)
}
