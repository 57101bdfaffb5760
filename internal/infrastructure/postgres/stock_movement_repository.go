package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del ledger sobre PostgreSQL (usable con
// pool o tx). Append-only: no hay UPDATE ni DELETE de movimientos.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste una entrada del ledger.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (id, product_id, delta, reason, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.Delta,
		movement.Reason, movement.Note, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// List lista movimientos con los filtros dados (AND lógico), más reciente
// primero. Las fechas comparan por fecha calendario (created_at::date).
func (r *StockMovementRepo) List(f repository.MovementFilter) ([]repository.MovementRow, error) {
	query := `
		SELECT m.id, m.product_id, m.delta, m.reason, m.note, m.created_at, p.sku, p.name
		FROM stock_movements m
		JOIN products p ON p.id = m.product_id
		WHERE 1=1`
	var args []any
	pos := 1
	if f.SKU != "" {
		query += fmt.Sprintf(" AND p.sku ILIKE $%d", pos)
		args = append(args, "%"+f.SKU+"%")
		pos++
	}
	if f.ProductID != "" {
		query += fmt.Sprintf(" AND m.product_id = $%d", pos)
		args = append(args, f.ProductID)
		pos++
	}
	if f.Reason != "" {
		query += fmt.Sprintf(" AND m.reason = $%d", pos)
		args = append(args, f.Reason)
		pos++
	}
	if f.DateFrom != nil {
		query += fmt.Sprintf(" AND m.created_at::date >= $%d::date", pos)
		args = append(args, *f.DateFrom)
		pos++
	}
	if f.DateTo != nil {
		query += fmt.Sprintf(" AND m.created_at::date <= $%d::date", pos)
		args = append(args, *f.DateTo)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY m.created_at DESC LIMIT $%d", pos)
	args = append(args, f.Limit)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []repository.MovementRow
	for rows.Next() {
		var row repository.MovementRow
		m := &row.Movement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Delta, &m.Reason, &m.Note, &m.CreatedAt,
			&row.ProductSKU, &row.ProductName); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
