package services

import (
	"context"
	"time"

	"arihant/internal/domain"
	"arihant/internal/repos"
)

const DefaultListLimit = 100

type CatalogService struct {
	Prods repos.ProductStore
	// MaxLimit caps listing size when > 0. Zero leaves the caller in control.
	MaxLimit int
}

func NewCatalogService(prods repos.ProductStore, maxLimit int) *CatalogService {
	return &CatalogService{Prods: prods, MaxLimit: maxLimit}
}

func (s *CatalogService) products() (repos.ProductStore, error) {
	if s == nil || s.Prods == nil {
		return nil, domain.ErrNotConfigured
	}
	return s.Prods, nil
}

func (s *CatalogService) List(ctx context.Context, q domain.ProductQuery) ([]domain.Product, error) {
	prods, err := s.products()
	if err != nil {
		return nil, err
	}
	if s.MaxLimit > 0 && (q.Limit <= 0 || q.Limit > s.MaxLimit) {
		q.Limit = s.MaxLimit
	}
	return prods.List(ctx, q)
}

func (s *CatalogService) GetProduct(ctx context.Context, rawID string) (domain.Product, error) {
	prods, err := s.products()
	if err != nil {
		return domain.Product{}, err
	}
	id, err := domain.ParseID(rawID)
	if err != nil {
		return domain.Product{}, err
	}
	return prods.Get(ctx, id)
}

// CreateProduct inserts p and returns the new id in its string form.
func (s *CatalogService) CreateProduct(ctx context.Context, p domain.Product) (string, error) {
	prods, err := s.products()
	if err != nil {
		return "", err
	}
	p.CreatedAt = time.Now().UTC()
	id, err := prods.Create(ctx, p)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, rawID string, p domain.Product) (domain.Product, error) {
	prods, err := s.products()
	if err != nil {
		return domain.Product{}, err
	}
	id, err := domain.ParseID(rawID)
	if err != nil {
		return domain.Product{}, err
	}
	return prods.Update(ctx, id, p)
}

func (s *CatalogService) DeleteProduct(ctx context.Context, rawID string) error {
	prods, err := s.products()
	if err != nil {
		return err
	}
	id, err := domain.ParseID(rawID)
	if err != nil {
		return err
	}
	return prods.Delete(ctx, id)
}
