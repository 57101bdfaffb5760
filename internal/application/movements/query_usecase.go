// Package movements contiene el listado filtrado y acotado del ledger de
// movimientos (solo lectura).
package movements

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

const (
	defaultLimit = 200
	maxLimit     = 1000
	dateLayout   = "2006-01-02"
)

// MovementQuery parámetros crudos del query string. El caso de uso los sanea:
// fechas mal formadas se ignoran y un limit inválido cae al default, nunca se
// rechaza la petición por un filtro malo.
type MovementQuery struct {
	SKU       string
	ProductID string
	Reason    string
	DateFrom  string // YYYY-MM-DD
	DateTo    string // YYYY-MM-DD
	Limit     string
}

// QueryUseCase listado read-only de movimientos, más reciente primero.
type QueryUseCase struct {
	movementRepo repository.StockMovementRepository
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(movementRepo repository.StockMovementRepository) *QueryUseCase {
	return &QueryUseCase{movementRepo: movementRepo}
}

// ListMovements convierte los filtros crudos en un MovementFilter y delega en
// el repositorio. Los filtros se combinan con AND; las fechas comparan por
// fecha calendario.
func (uc *QueryUseCase) ListMovements(ctx context.Context, q MovementQuery) ([]repository.MovementRow, error) {
	f := repository.MovementFilter{
		SKU:       strings.TrimSpace(q.SKU),
		ProductID: strings.TrimSpace(q.ProductID),
		Reason:    strings.TrimSpace(q.Reason),
		Limit:     parseLimit(q.Limit),
	}
	if d, err := time.Parse(dateLayout, strings.TrimSpace(q.DateFrom)); err == nil {
		f.DateFrom = &d
	}
	if d, err := time.Parse(dateLayout, strings.TrimSpace(q.DateTo)); err == nil {
		f.DateTo = &d
	}
	return uc.movementRepo.List(f)
}

// parseLimit: no entero -> default; entero fuera de rango -> acotado a [1, maxLimit].
func parseLimit(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultLimit
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultLimit
	}
	if n < 1 {
		return 1
	}
	if n > maxLimit {
		return maxLimit
	}
	return n
}
