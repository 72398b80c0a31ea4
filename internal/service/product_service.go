package service

import (
	"context"

	"github.com/Lixing-Zhang/kart-challenge/counter-pos/internal/catalog"
	"github.com/Lixing-Zhang/kart-challenge/counter-pos/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/counter-pos/internal/repository"
)

// ProductService handles business logic for products
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts returns the products passing filter, in catalog order
func (s *ProductService) ListProducts(ctx context.Context, filter catalog.Filter) ([]models.Product, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Apply(products, filter), nil
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Categories returns the category selector values, the wildcard first
func (s *ProductService) Categories(ctx context.Context) ([]string, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return append([]string{catalog.AllCategories}, catalog.Categories(products)...), nil
}
