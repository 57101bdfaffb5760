// Package reports contiene los casos de uso read-only del dashboard de
// inventario: totales, stock bajo y pronóstico de agotamiento por SKU.
package reports

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

const (
	dashboardTopN      = 5 // productos en los widgets de stock bajo y pronóstico
	lowStockThreshold  = 5 // qty <= 5 cuenta como stock bajo
	forecastWindowDays = 30
	recentWindow       = 7 * 24 * time.Hour

	summaryCacheKey = "dashboard:summary"
	summaryCacheTTL = 30 * time.Second
)

// Cache puerto opcional para cachear el resumen serializado con TTL corto.
// Un fallo del caché nunca falla la petición: se recalcula y listo.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

// DashboardUseCase arma el resumen del dashboard a partir del estado actual
// del ledger. Solo lectura, sin efectos; determinista para un `now` fijo.
type DashboardUseCase struct {
	reportRepo repository.ReportRepository
	cache      Cache // nil = sin caché
}

// NewDashboardUseCase construye el caso de uso. cache puede ser nil.
func NewDashboardUseCase(reportRepo repository.ReportRepository, cache Cache) *DashboardUseCase {
	return &DashboardUseCase{reportRepo: reportRepo, cache: cache}
}

// GetSummary construye el DashboardSummaryDTO para el instante `now`.
//
// Cuatro consultas en paralelo:
//  1. GetStockTotals            → total_products, total_stock, total_value
//  2. CountMovementsSince(7d)   → movements_last_7d
//  3. GetLowStock(5, top 5)     → low_stock
//  4. GetOutflowSince(30d)      → forecast
func (uc *DashboardUseCase) GetSummary(ctx context.Context, now time.Time) (*dto.DashboardSummaryDTO, error) {
	if uc.cache != nil {
		if b, ok := uc.cache.Get(ctx, summaryCacheKey); ok {
			var cached dto.DashboardSummaryDTO
			if err := json.Unmarshal(b, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	type totalsResult struct {
		totals repository.StockTotals
		err    error
	}
	type countResult struct {
		count int64
		err   error
	}
	type lowStockResult struct {
		rows []repository.LowStockRow
		err  error
	}
	type outflowResult struct {
		rows []repository.ProductOutflow
		err  error
	}

	totalsCh := make(chan totalsResult, 1)
	countCh := make(chan countResult, 1)
	lowCh := make(chan lowStockResult, 1)
	outCh := make(chan outflowResult, 1)

	go func() {
		t, err := uc.reportRepo.GetStockTotals(ctx)
		totalsCh <- totalsResult{t, err}
	}()
	go func() {
		n, err := uc.reportRepo.CountMovementsSince(ctx, now.Add(-recentWindow))
		countCh <- countResult{n, err}
	}()
	go func() {
		rows, err := uc.reportRepo.GetLowStock(ctx, lowStockThreshold, dashboardTopN)
		lowCh <- lowStockResult{rows, err}
	}()
	go func() {
		rows, err := uc.reportRepo.GetOutflowSince(ctx, now.AddDate(0, 0, -forecastWindowDays))
		outCh <- outflowResult{rows, err}
	}()

	totals := <-totalsCh
	count := <-countCh
	low := <-lowCh
	out := <-outCh

	if totals.err != nil {
		return nil, fmt.Errorf("dashboard: totales: %w", totals.err)
	}
	if count.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos recientes: %w", count.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", low.err)
	}
	if out.err != nil {
		return nil, fmt.Errorf("dashboard: salidas 30d: %w", out.err)
	}

	summary := &dto.DashboardSummaryDTO{
		TotalProducts:   totals.totals.TotalProducts,
		TotalStock:      totals.totals.TotalStock,
		TotalValue:      totals.totals.TotalValue,
		MovementsLast7d: count.count,
		LowStock:        lowStockToDTO(low.rows),
		Forecast:        buildForecast(out.rows),
	}

	if uc.cache != nil {
		if b, err := json.Marshal(summary); err == nil {
			uc.cache.Set(ctx, summaryCacheKey, b, summaryCacheTTL)
		}
	}
	return summary, nil
}

func lowStockToDTO(rows []repository.LowStockRow) []dto.LowStockDTO {
	list := make([]dto.LowStockDTO, 0, len(rows))
	for _, r := range rows {
		list = append(list, dto.LowStockDTO{
			ID: r.ID, SKU: r.SKU, Name: r.Name, Qty: r.Qty, Status: r.Status,
		})
	}
	return list
}

// buildForecast calcula, por producto con salidas en la ventana, el uso diario
// promedio y los días hasta quedar en cero, y conserva los 5 más urgentes.
// Un producto sin salidas recientes no tiene pronóstico. Empates de
// days_to_zero se rompen por id de producto ascendente (reproducible).
func buildForecast(rows []repository.ProductOutflow) []dto.ForecastDTO {
	window := decimal.NewFromInt(forecastWindowDays)

	type forecastEntry struct {
		dto       dto.ForecastDTO
		productID string
		daysExact decimal.Decimal // sin redondear, para ordenar
	}
	entries := make([]forecastEntry, 0, len(rows))
	for _, r := range rows {
		if !r.TotalOut.IsNegative() {
			continue
		}
		usage := r.TotalOut.Neg().Div(window)
		days := decimal.NewFromInt(r.Qty).Div(usage)
		entries = append(entries, forecastEntry{
			dto: dto.ForecastDTO{
				SKU:           r.SKU,
				Name:          r.Name,
				AvgDailyUsage: usage.Round(2).InexactFloat64(),
				DaysToZero:    days.Round(1).InexactFloat64(),
				CurrentQty:    r.Qty,
			},
			productID: r.ProductID,
			daysExact: days,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if c := entries[i].daysExact.Cmp(entries[j].daysExact); c != 0 {
			return c < 0
		}
		return entries[i].productID < entries[j].productID
	})
	if len(entries) > dashboardTopN {
		entries = entries[:dashboardTopN]
	}

	list := make([]dto.ForecastDTO, 0, len(entries))
	for _, e := range entries {
		list = append(list, e.dto)
	}
	return list
}
