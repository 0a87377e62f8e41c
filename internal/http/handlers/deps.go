package handlers

import (
	"arihant/internal/config"
	"arihant/internal/repos"
	"arihant/internal/services"
)

type Deps struct {
	Gate             *services.AdminGate
	HealthHandler    *HealthHandler
	ProductHandler   *ProductHandler
	InventoryHandler *InventoryHandler
	OrderHandler     *OrderHandler
	AdminHandler     *AdminHandler
}

// NewDeps wires services over store. A nil store leaves every data route
// answering "Database not configured".
func NewDeps(store repos.Store, cfg config.Config) *Deps {
	var (
		prods  repos.ProductStore
		orders repos.OrderStore
	)
	if store != nil {
		prods = store.Products()
		orders = store.Orders()
	}

	catalogSvc := services.NewCatalogService(prods, cfg.MaxListLimit)
	invSvc := services.NewInventoryService(prods)
	orderSvc := services.NewOrderService(prods, orders)

	return &Deps{
		Gate:             services.NewAdminGate(cfg.AdminKey, cfg.AdminKeyHash),
		HealthHandler:    &HealthHandler{Store: store, DatabaseURLSet: cfg.DatabaseURL != ""},
		ProductHandler:   &ProductHandler{Catalog: catalogSvc},
		InventoryHandler: &InventoryHandler{Inv: invSvc},
		OrderHandler:     &OrderHandler{Order: orderSvc},
		AdminHandler:     &AdminHandler{Order: orderSvc},
	}
}
