// Seeder de datos de demo: crea productos y un historial de movimientos
// pasando por el motor de stock, para que el ledger quede consistente.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/stock"
	"github.com/jhoicas/stock-ledger-api/internal/application/usecase"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stock-ledger-api/pkg/config"
	"github.com/jhoicas/stock-ledger-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productUC := usecase.NewProductUseCase(postgres.NewProductRepository(pool))
	stockUC := stock.NewStockUseCase(postgres.NewTxRunner(pool))

	seedProducts := []dto.CreateProductRequest{
		{SKU: "CAFE-250", Name: "Café molido 250g", Qty: 40, Price: 18500},
		{SKU: "AZUCAR-1K", Name: "Azúcar 1kg", Qty: 25, Price: 6200},
		{SKU: "ARROZ-5K", Name: "Arroz 5kg", Qty: 12, Price: 28900},
		{SKU: "ACEITE-1L", Name: "Aceite 1L", Qty: 4, Price: 15400},
		{SKU: "PANELA-500", Name: "Panela 500g", Qty: 0, Price: 4300},
	}

	for _, in := range seedProducts {
		p, err := productUC.Create(ctx, in)
		if err != nil {
			if err == domain.ErrDuplicate {
				log.Info().Str("sku", in.SKU).Msg("producto ya existe, se omite")
				continue
			}
			log.Fatal().Err(err).Str("sku", in.SKU).Msg("crear producto")
		}
		log.Info().Str("sku", p.SKU).Int64("qty", p.Qty).Msg("producto creado")

		// Algo de historial para alimentar el dashboard
		if p.Qty >= 10 {
			if _, _, err := stockUC.Buy(ctx, p.ID, 3); err != nil {
				log.Fatal().Err(err).Str("sku", p.SKU).Msg("venta de demo")
			}
			if _, _, err := stockUC.AdjustStock(ctx, p.ID, stock.AdjustStockInput{
				Delta:  -1,
				Reason: entity.ReasonDAMAGE,
				Note:   "unidad averiada en bodega",
			}); err != nil {
				log.Fatal().Err(err).Str("sku", p.SKU).Msg("ajuste de demo")
			}
		}
	}

	log.Info().Msg("seed completado")
}
