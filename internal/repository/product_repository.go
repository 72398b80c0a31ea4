package repository

import (
	"context"
	"errors"

	"github.com/Lixing-Zhang/kart-challenge/counter-pos/internal/models"
	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
}

// InMemoryProductRepository implements ProductRepository with in-memory storage.
// Products keep their declaration order.
type InMemoryProductRepository struct {
	products []models.Product
	byID     map[string]int
}

// SeedProducts returns the counter's built-in menu
func SeedProducts() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Arabic Shawarma", Category: "shawarma", Price: decimal.RequireFromString("55.00")},
		{ID: "2", Name: "Shawarma Plate", Category: "shawarma", Price: decimal.RequireFromString("75.00")},
		{ID: "3", Name: "Sandwich", Category: "sandwiches", Price: decimal.RequireFromString("35.00")},
		{ID: "4", Name: "Fries", Category: "sides", Price: decimal.RequireFromString("25.00")},
		{ID: "5", Name: "Soft Drink", Category: "drinks", Price: decimal.RequireFromString("15.00")},
		{ID: "6", Name: "Mineral Water", Category: "drinks", Price: decimal.RequireFromString("10.00")},
	}
}

// NewInMemoryProductRepository creates a new in-memory product repository with seed data
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return NewInMemoryProductRepositoryFrom(SeedProducts())
}

// NewInMemoryProductRepositoryFrom creates a repository over an already validated catalog
func NewInMemoryProductRepositoryFrom(products []models.Product) *InMemoryProductRepository {
	stored := make([]models.Product, len(products))
	copy(stored, products)

	byID := make(map[string]int, len(stored))
	for i, p := range stored {
		byID[p.ID] = i
	}

	return &InMemoryProductRepository{
		products: stored,
		byID:     byID,
	}
}

// GetAll returns all products in catalog order
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, len(r.products))
	copy(products, r.products)
	return products, nil
}

// GetByID returns a product by its ID
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	i, exists := r.byID[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	product := r.products[i]
	return &product, nil
}
