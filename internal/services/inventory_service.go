package services

import (
	"context"

	"arihant/internal/domain"
	"arihant/internal/repos"
)

type InventoryService struct {
	Prods repos.ProductStore
}

func NewInventoryService(prods repos.ProductStore) *InventoryService {
	return &InventoryService{Prods: prods}
}

// CheckAvailability converts stock to IN_STOCK / LOW_STOCK / OUT_OF_STOCK.
func (s *InventoryService) CheckAvailability(ctx context.Context, rawID string) (domain.Availability, error) {
	if s == nil || s.Prods == nil {
		return domain.Availability{}, domain.ErrNotConfigured
	}
	id, err := domain.ParseID(rawID)
	if err != nil {
		return domain.Availability{}, err
	}
	p, err := s.Prods.Get(ctx, id)
	if err != nil {
		return domain.Availability{}, err
	}

	status := "OUT_OF_STOCK"
	switch {
	case p.Stock >= 5:
		status = "IN_STOCK"
	case p.Stock > 0:
		status = "LOW_STOCK"
	}
	return domain.Availability{Status: status, Qty: p.Stock}, nil
}
