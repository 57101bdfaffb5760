package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para el dashboard de inventario.
// Va directo al pool: los reportes no participan en transacciones.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// GetStockTotals devuelve conteo de productos, stock total y valor total
// (qty * price). Cero en todo si no hay productos.
func (r *ReportRepo) GetStockTotals(ctx context.Context) (repository.StockTotals, error) {
	const query = `
		SELECT COUNT(*),
		       COALESCE(SUM(qty), 0)::BIGINT,
		       COALESCE(SUM(qty * price), 0)::BIGINT
		FROM products`
	var t repository.StockTotals
	err := r.pool.QueryRow(ctx, query).Scan(&t.TotalProducts, &t.TotalStock, &t.TotalValue)
	if err != nil {
		return repository.StockTotals{}, fmt.Errorf("reports.GetStockTotals: %w", err)
	}
	return t, nil
}

// CountMovementsSince cuenta movimientos creados desde `since` (timestamp).
func (r *ReportRepo) CountMovementsSince(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM stock_movements WHERE created_at >= $1`, since,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("reports.CountMovementsSince: %w", err)
	}
	return n, nil
}

// GetLowStock devuelve hasta `limit` productos con qty <= maxQty, orden
// ascendente por qty (empates por id, para salida reproducible).
func (r *ReportRepo) GetLowStock(ctx context.Context, maxQty int64, limit int) ([]repository.LowStockRow, error) {
	const query = `
		SELECT id, sku, name, qty, status
		FROM products WHERE qty <= $1
		ORDER BY qty ASC, id ASC
		LIMIT $2`
	rows, err := r.pool.Query(ctx, query, maxQty, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.GetLowStock: %w", err)
	}
	defer rows.Close()
	var list []repository.LowStockRow
	for rows.Next() {
		var row repository.LowStockRow
		if err := rows.Scan(&row.ID, &row.SKU, &row.Name, &row.Qty, &row.Status); err != nil {
			return nil, fmt.Errorf("scan low stock: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// GetOutflowSince suma los deltas negativos por producto desde `since`.
// SUM(delta) llega como NUMERIC y se escanea a decimal (codec del pool).
// Solo aparecen productos con al menos una salida en la ventana.
func (r *ReportRepo) GetOutflowSince(ctx context.Context, since time.Time) ([]repository.ProductOutflow, error) {
	const query = `
		SELECT p.id, p.sku, p.name, p.qty, SUM(m.delta)
		FROM products p
		JOIN stock_movements m ON m.product_id = p.id
		WHERE m.created_at >= $1 AND m.delta < 0
		GROUP BY p.id, p.sku, p.name, p.qty
		ORDER BY p.id ASC`
	rows, err := r.pool.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("reports.GetOutflowSince: %w", err)
	}
	defer rows.Close()
	var list []repository.ProductOutflow
	for rows.Next() {
		var row repository.ProductOutflow
		if err := rows.Scan(&row.ProductID, &row.SKU, &row.Name, &row.Qty, &row.TotalOut); err != nil {
			return nil, fmt.Errorf("scan outflow: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
