// Package stock contiene el motor de stock: las dos mutaciones canónicas del
// inventario (ajuste manual y venta) aplicadas como unidad atómica sobre el
// ledger de movimientos.
package stock

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// buyNote nota fija que el punto de venta registra en cada venta.
const buyNote = "Venta punto de venta"

// StockUseCase aplica mutaciones de cantidad con bloqueo de fila
// (SELECT FOR UPDATE) y Commit/Rollback vía TxRunner. Cada mutación exitosa
// deja qty, status y el ledger consistentes; cada fallo no deja nada.
type StockUseCase struct {
	txRunner TxRunner
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(txRunner TxRunner) *StockUseCase {
	return &StockUseCase{txRunner: txRunner}
}

// AdjustStockInput entrada para un ajuste manual de stock.
type AdjustStockInput struct {
	Delta  int64
	Reason string // vacío = ADJUSTMENT
	Note   string
}

// AdjustStock valida la entrada, bloquea la fila del producto, recalcula qty y
// status con la regla de tres niveles y registra el movimiento en el ledger.
//
// Errores: ErrInvalidInput (delta cero o razón desconocida), ErrNotFound,
// ErrNegativeStock (qty + delta < 0; ninguna escritura se aplica).
func (uc *StockUseCase) AdjustStock(ctx context.Context, productID string, in AdjustStockInput) (*entity.Product, *entity.StockMovement, error) {
	if productID == "" || in.Delta == 0 {
		return nil, nil, domain.ErrInvalidInput
	}
	reason := in.Reason
	if reason == "" {
		reason = entity.ReasonADJUSTMENT
	}
	if !entity.ValidReason(reason) {
		return nil, nil, domain.ErrInvalidInput
	}
	note := strings.TrimSpace(in.Note)

	var (
		product  *entity.Product
		movement *entity.StockMovement
	)
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		p, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		if p.Qty+in.Delta < 0 {
			return domain.ErrNegativeStock
		}
		product, movement, err = applyMovement(productRepo, movementRepo, p, in.Delta, reason, note, time.Now())
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return product, movement, nil
}

// Buy registra una venta de punto de venta: equivale a un ajuste con
// delta = -qty, razón ADJUSTMENT y nota fija.
//
// Errores: ErrInvalidInput (qty <= 0), ErrNotFound, ErrInsufficientStock
// (qty mayor al stock disponible; ninguna escritura se aplica).
func (uc *StockUseCase) Buy(ctx context.Context, productID string, qty int64) (*entity.Product, *entity.StockMovement, error) {
	if productID == "" || qty <= 0 {
		return nil, nil, domain.ErrInvalidInput
	}

	var (
		product  *entity.Product
		movement *entity.StockMovement
	)
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		p, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		if qty > p.Qty {
			return domain.ErrInsufficientStock
		}
		product, movement, err = applyMovement(productRepo, movementRepo, p, -qty, entity.ReasonADJUSTMENT, buyNote, time.Now())
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return product, movement, nil
}

// applyMovement actualiza qty/status/updated_at del producto y agrega la
// entrada al ledger dentro de la transacción del caller. Precondición: la
// cantidad resultante ya fue validada como no negativa.
func applyMovement(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	p *entity.Product,
	delta int64, reason, note string,
	now time.Time,
) (*entity.Product, *entity.StockMovement, error) {
	p.Qty += delta
	p.Status = entity.StatusForQty(p.Qty)
	p.UpdatedAt = now
	if err := productRepo.UpdateStock(p); err != nil {
		return nil, nil, err
	}
	mov := &entity.StockMovement{
		ID:        uuid.New().String(),
		ProductID: p.ID,
		Delta:     delta,
		Reason:    reason,
		Note:      note,
		CreatedAt: now,
	}
	if err := movementRepo.Create(mov); err != nil {
		return nil, nil, err
	}
	return p, mov, nil
}
