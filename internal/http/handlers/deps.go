package handlers

import (
	"shadeworks/internal/config"
	"shadeworks/internal/repos"
	"shadeworks/internal/services"
	"shadeworks/internal/store"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	ProductHandler   *ProductHandler
	QuoteHandler     *QuoteHandler
	CartHandler      *CartHandler
	SavedCartHandler *SavedCartHandler
	SavedHandler     *SavedHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, gw *store.Gateway) *Deps {
	prodRepo := repos.NewProductRepo(db)

	catalogSvc := services.NewCatalogService(prodRepo)
	cartSvc := services.NewCartService(gw, cfg.TaxRate)
	savedCartSvc := services.NewSavedCartService(gw, cartSvc)
	savedSvc := services.NewSavedForLaterService(gw, cartSvc)

	return &Deps{
		ProductHandler:   &ProductHandler{Catalog: catalogSvc},
		QuoteHandler:     &QuoteHandler{Catalog: catalogSvc},
		CartHandler:      &CartHandler{Cart: cartSvc, Catalog: catalogSvc},
		SavedCartHandler: &SavedCartHandler{Saved: savedCartSvc},
		SavedHandler:     &SavedHandler{Saved: savedSvc},
	}
}
