package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/jhoicas/stock-ledger-api/internal/application/reports"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReportRepo devuelve datos enlatados y registra los instantes con que se
// le consulta, para verificar las ventanas de 7 y 30 días.
type fakeReportRepo struct {
	totals   repository.StockTotals
	count    int64
	lowStock []repository.LowStockRow
	outflows []repository.ProductOutflow

	calls          int
	countSince     time.Time
	outflowSince   time.Time
	lowStockMaxQty int64
	lowStockLimit  int
}

func (r *fakeReportRepo) GetStockTotals(ctx context.Context) (repository.StockTotals, error) {
	r.calls++
	return r.totals, nil
}

func (r *fakeReportRepo) CountMovementsSince(ctx context.Context, since time.Time) (int64, error) {
	r.countSince = since
	return r.count, nil
}

func (r *fakeReportRepo) GetLowStock(ctx context.Context, maxQty int64, limit int) ([]repository.LowStockRow, error) {
	r.lowStockMaxQty = maxQty
	r.lowStockLimit = limit
	return r.lowStock, nil
}

func (r *fakeReportRepo) GetOutflowSince(ctx context.Context, since time.Time) ([]repository.ProductOutflow, error) {
	r.outflowSince = since
	return r.outflows, nil
}

// fakeCache caché en memoria para verificar el camino de cache hit/miss.
type fakeCache struct {
	data map[string][]byte
	sets int
	hits int
}

func newFakeCache() *fakeCache { return &fakeCache{data: make(map[string][]byte)} }

func (c *fakeCache) Get(ctx context.Context, key string) ([]byte, bool) {
	b, ok := c.data[key]
	if ok {
		c.hits++
	}
	return b, ok
}

func (c *fakeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	c.sets++
	c.data[key] = value
}

func outflow(id, sku string, qty, totalOut int64) repository.ProductOutflow {
	return repository.ProductOutflow{
		ProductID: id,
		SKU:       sku,
		Name:      "Producto " + sku,
		Qty:       qty,
		TotalOut:  decimal.NewFromInt(totalOut),
	}
}

func TestGetSummary_TotalesYVentanas(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := &fakeReportRepo{
		totals: repository.StockTotals{TotalProducts: 3, TotalStock: 57, TotalValue: 123400},
		count:  9,
		lowStock: []repository.LowStockRow{
			{ID: "p2", SKU: "AZ-1", Name: "Azúcar", Qty: 2, Status: "PENDING"},
		},
	}
	uc := reports.NewDashboardUseCase(repo, nil)

	s, err := uc.GetSummary(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, int64(3), s.TotalProducts)
	assert.Equal(t, int64(57), s.TotalStock)
	assert.Equal(t, int64(123400), s.TotalValue)
	assert.Equal(t, int64(9), s.MovementsLast7d)
	require.Len(t, s.LowStock, 1)
	assert.Equal(t, "AZ-1", s.LowStock[0].SKU)

	assert.Equal(t, now.Add(-7*24*time.Hour), repo.countSince, "ventana de 7 días")
	assert.Equal(t, now.AddDate(0, 0, -30), repo.outflowSince, "ventana de 30 días")
	assert.Equal(t, int64(5), repo.lowStockMaxQty, "stock bajo: qty <= 5")
	assert.Equal(t, 5, repo.lowStockLimit)
}

func TestGetSummary_SinProductosTodoEnCero(t *testing.T) {
	uc := reports.NewDashboardUseCase(&fakeReportRepo{}, nil)

	s, err := uc.GetSummary(context.Background(), time.Now())

	require.NoError(t, err)
	assert.Zero(t, s.TotalProducts)
	assert.Zero(t, s.TotalStock)
	assert.Zero(t, s.TotalValue)
	assert.NotNil(t, s.LowStock, "listas vacías, no null")
	assert.Empty(t, s.LowStock)
	assert.NotNil(t, s.Forecast)
	assert.Empty(t, s.Forecast)
}

// Escenario: salidas por -60 en 30 días con qty=30 -> uso diario 2.0 y 15.0
// días para agotarse.
func TestGetSummary_PronosticoEscenarioBase(t *testing.T) {
	repo := &fakeReportRepo{outflows: []repository.ProductOutflow{
		outflow("p1", "CAFE-250", 30, -60),
	}}
	uc := reports.NewDashboardUseCase(repo, nil)

	s, err := uc.GetSummary(context.Background(), time.Now())

	require.NoError(t, err)
	require.Len(t, s.Forecast, 1)
	f := s.Forecast[0]
	assert.Equal(t, "CAFE-250", f.SKU)
	assert.Equal(t, 2.0, f.AvgDailyUsage)
	assert.Equal(t, 15.0, f.DaysToZero)
	assert.Equal(t, int64(30), f.CurrentQty)
}

// Redondeo: uso a 2 decimales, días a 1 decimal. -7 en 30 días = 0.2333.. ->
// 0.23; con qty=10, 10/0.2333.. = 42.857.. -> 42.9 (los días se calculan con
// el uso sin redondear).
func TestGetSummary_PronosticoRedondeo(t *testing.T) {
	repo := &fakeReportRepo{outflows: []repository.ProductOutflow{
		outflow("p1", "AR-5K", 10, -7),
	}}
	uc := reports.NewDashboardUseCase(repo, nil)

	s, err := uc.GetSummary(context.Background(), time.Now())

	require.NoError(t, err)
	require.Len(t, s.Forecast, 1)
	assert.Equal(t, 0.23, s.Forecast[0].AvgDailyUsage)
	assert.Equal(t, 42.9, s.Forecast[0].DaysToZero)
}

// Un producto sin salidas en la ventana no tiene pronóstico.
func TestGetSummary_SinSalidasNoHayPronostico(t *testing.T) {
	repo := &fakeReportRepo{outflows: []repository.ProductOutflow{
		{ProductID: "p1", SKU: "X", Qty: 10, TotalOut: decimal.Zero},
	}}
	uc := reports.NewDashboardUseCase(repo, nil)

	s, err := uc.GetSummary(context.Background(), time.Now())

	require.NoError(t, err)
	assert.Empty(t, s.Forecast)
}

// Se conservan los 5 con menor days_to_zero, ascendente; empates por id de
// producto ascendente.
func TestGetSummary_PronosticoTop5OrdenadoConDesempate(t *testing.T) {
	repo := &fakeReportRepo{outflows: []repository.ProductOutflow{
		outflow("p1", "A", 100, -30), // 100 días
		outflow("p2", "B", 10, -30),  // 10 días
		outflow("p4", "D", 20, -60),  // 10 días (empata con p2, id mayor)
		outflow("p3", "C", 5, -30),   // 5 días
		outflow("p5", "E", 90, -30),  // 90 días
		outflow("p6", "F", 30, -30),  // 30 días
	}}
	uc := reports.NewDashboardUseCase(repo, nil)

	s, err := uc.GetSummary(context.Background(), time.Now())

	require.NoError(t, err)
	require.Len(t, s.Forecast, 5, "máximo 5 pronósticos")
	skus := make([]string, 0, 5)
	for _, f := range s.Forecast {
		skus = append(skus, f.SKU)
	}
	assert.Equal(t, []string{"C", "B", "D", "F", "E"}, skus)
}

// Con caché: la primera llamada calcula y guarda; la segunda sale del caché
// sin volver a consultar los totales.
func TestGetSummary_SegundaLlamadaSaleDelCache(t *testing.T) {
	repo := &fakeReportRepo{
		totals: repository.StockTotals{TotalProducts: 2, TotalStock: 8, TotalValue: 100},
	}
	c := newFakeCache()
	uc := reports.NewDashboardUseCase(repo, c)
	ctx := context.Background()

	first, err := uc.GetSummary(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, c.sets)
	assert.Equal(t, 1, repo.calls)

	second, err := uc.GetSummary(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, c.hits)
	assert.Equal(t, 1, repo.calls, "la segunda llamada no toca el repositorio")
	assert.Equal(t, first.TotalStock, second.TotalStock)
	assert.Equal(t, first.TotalValue, second.TotalValue)
}
