package stock_test

import (
	"context"
	"time"

	"github.com/jhoicas/stock-ledger-api/internal/application/stock"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// fakeStore guarda productos y movimientos en memoria y simula la atomicidad
// del TxRunner real: si fn falla, se restaura el snapshot previo (rollback).
type fakeStore struct {
	products  map[string]*entity.Product
	movements []*entity.StockMovement
}

func newFakeStore(products ...*entity.Product) *fakeStore {
	s := &fakeStore{products: make(map[string]*entity.Product)}
	for _, p := range products {
		cp := *p
		s.products[p.ID] = &cp
	}
	return s
}

func (s *fakeStore) snapshot() *fakeStore {
	cp := &fakeStore{products: make(map[string]*entity.Product, len(s.products))}
	for id, p := range s.products {
		c := *p
		cp.products[id] = &c
	}
	cp.movements = append([]*entity.StockMovement(nil), s.movements...)
	return cp
}

// sumDeltas suma los deltas del ledger de un producto (para verificar la
// consistencia qty == baseline + suma).
func (s *fakeStore) sumDeltas(productID string) int64 {
	var sum int64
	for _, m := range s.movements {
		if m.ProductID == productID {
			sum += m.Delta
		}
	}
	return sum
}

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(p *entity.Product) error { cp := *p; r.s.products[p.ID] = &cp; return nil }

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(p *entity.Product) error      { return r.UpdateStock(p) }
func (r *fakeProductRepo) UpdateStock(p *entity.Product) error { cp := *p; r.s.products[p.ID] = &cp; return nil }

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Delete(id string) error                            { delete(r.s.products, id); return nil }

type fakeMovementRepo struct {
	s         *fakeStore
	createErr error // simula un fallo de persistencia en el append del ledger
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	if r.createErr != nil {
		return r.createErr
	}
	cp := *m
	r.s.movements = append(r.s.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) List(f repository.MovementFilter) ([]repository.MovementRow, error) {
	return nil, nil
}

// fakeTxRunner aplica fn sobre el store y revierte todo si fn devuelve error.
type fakeTxRunner struct {
	s           *fakeStore
	movementErr error
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	snap := r.s.snapshot()
	err := fn(&fakeProductRepo{r.s}, &fakeMovementRepo{s: r.s, createErr: r.movementErr})
	if err != nil {
		*r.s = *snap // rollback
		return err
	}
	return nil
}

var _ stock.TxRunner = (*fakeTxRunner)(nil)

// producto de prueba con stock inicial dado
func productWithQty(id string, qty int64) *entity.Product {
	return &entity.Product{
		ID:        id,
		SKU:       "SKU-" + id,
		Name:      "Producto " + id,
		Qty:       qty,
		Status:    entity.StatusForQty(qty),
		Price:     1000,
		CreatedAt: time.Now().Add(-time.Hour),
		UpdatedAt: time.Now().Add(-time.Hour),
	}
}
