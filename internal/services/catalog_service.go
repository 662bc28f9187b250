package services

import (
	"golang.org/x/sync/singleflight"

	"shadeworks/internal/domain"
	"shadeworks/internal/repos"
)

// CatalogService is the read-only product source. Items copy their
// facts out of it at add-time and never consult it again.
type CatalogService struct {
	Prods *repos.ProductRepo
	sfg   singleflight.Group // collapses concurrent lookups of one product
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

func (s *CatalogService) Get(id string) (domain.Product, error) {
	v, err, _ := s.sfg.Do(id, func() (interface{}, error) {
		return s.Prods.Get(id)
	})
	if err != nil {
		return domain.Product{}, err
	}
	return v.(domain.Product), nil
}

func (s *CatalogService) List(page, pageSize int) ([]domain.Product, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 12
	}
	offset := (page - 1) * pageSize
	return s.Prods.List(pageSize, offset)
}

func (s *CatalogService) ListByCategory(catID string, page, pageSize int) ([]domain.Product, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 12
	}
	offset := (page - 1) * pageSize
	return s.Prods.ListByCategory(catID, pageSize, offset)
}
