package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos (pass-through a persistencia). El stock no
// se edita aquí: qty solo cambia vía el motor de stock; en Create se acepta un
// qty inicial como baseline del ledger y el status se deriva de él.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// Create valida y persiste un producto nuevo. SKU duplicado -> ErrDuplicate.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*entity.Product, error) {
	sku := strings.TrimSpace(in.SKU)
	name := strings.TrimSpace(in.Name)
	if sku == "" || name == "" || in.Qty < 0 || in.Price < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Product{
		ID:        uuid.New().String(),
		SKU:       sku,
		Name:      name,
		Qty:       in.Qty,
		Status:    entity.StatusForQty(in.Qty),
		Price:     in.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.productRepo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// Update modifica nombre y precio. Qty y status quedan fuera a propósito.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*entity.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Price < 0 {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Name = name
	p.Price = in.Price
	p.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

// List lista productos por fecha de actualización descendente.
func (uc *ProductUseCase) List(ctx context.Context, page dto.PageRequest) ([]*entity.Product, error) {
	page.DefaultPage()
	return uc.productRepo.List(page.Limit, page.Offset)
}

// Delete elimina un producto; sus movimientos caen en cascada.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.productRepo.Delete(id)
}
