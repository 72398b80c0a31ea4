// Package session holds the state of one counter order: the catalog, the
// cart, the product grid filter and the chosen order type.
//
// An OrderSession is not safe for concurrent use. Callers that share one
// across goroutines must serialize access.
package session

import (
	"errors"

	"github.com/Lixing-Zhang/kart-challenge/counter-pos/internal/catalog"
	"github.com/Lixing-Zhang/kart-challenge/counter-pos/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/counter-pos/internal/pricing"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrUnknownProduct  = errors.New("product is not in the catalog")
	ErrUnknownCategory = errors.New("category is not in the catalog")
)

// OrderSession is the in-memory state behind one POS screen
type OrderSession struct {
	catalog   []models.Product
	index     map[string]int
	pricing   pricing.Config
	cart      []models.Product
	filter    catalog.Filter
	orderType models.OrderType
}

// New creates an empty session over products priced with cfg
func New(products []models.Product, cfg pricing.Config) *OrderSession {
	stored := make([]models.Product, len(products))
	copy(stored, products)

	index := make(map[string]int, len(stored))
	for i, p := range stored {
		index[p.ID] = i
	}

	return &OrderSession{
		catalog:   stored,
		index:     index,
		pricing:   cfg,
		filter:    catalog.Filter{Category: catalog.AllCategories},
		orderType: models.OrderTypeNone,
	}
}

// Catalog returns the full product list in declaration order
func (s *OrderSession) Catalog() []models.Product {
	out := make([]models.Product, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// Filter returns the current grid filter
func (s *OrderSession) Filter() catalog.Filter {
	return s.filter
}

// VisibleProducts returns the products the grid should show for the current filter
func (s *OrderSession) VisibleProducts() []models.Product {
	return catalog.Apply(s.catalog, s.filter)
}

// SelectCategory changes the category selector. Unknown tags leave the filter untouched.
func (s *OrderSession) SelectCategory(tag string) ([]models.Product, error) {
	if !catalog.HasCategory(s.catalog, tag) {
		return nil, ErrUnknownCategory
	}
	if tag == "" {
		tag = catalog.AllCategories
	}
	s.filter.Category = tag
	return s.VisibleProducts(), nil
}

// SetSearchText changes the free-text search
func (s *OrderSession) SetSearchText(text string) []models.Product {
	s.filter.Search = text
	return s.VisibleProducts()
}

// OrderType returns the current order type
func (s *OrderSession) OrderType() models.OrderType {
	return s.orderType
}

// SelectOrderType changes the order type and returns the recomputed total
func (s *OrderSession) SelectOrderType(orderType models.OrderType) pricing.Breakdown {
	s.orderType = orderType
	return s.Total()
}

// AddToCart appends a product to the cart
func (s *OrderSession) AddToCart(product models.Product) {
	s.cart = append(s.cart, product)
}

// AddProduct appends the catalog product with the given id
func (s *OrderSession) AddProduct(productID string) (models.Product, error) {
	i, ok := s.index[productID]
	if !ok {
		return models.Product{}, ErrUnknownProduct
	}
	product := s.catalog[i]
	s.AddToCart(product)
	return product, nil
}

// RemoveLast drops the most recently added entry.
// It reports false, and does nothing, when the cart is empty.
func (s *OrderSession) RemoveLast() bool {
	if len(s.cart) == 0 {
		return false
	}
	s.cart = s.cart[:len(s.cart)-1]
	return true
}

// ClearCart empties the cart
func (s *OrderSession) ClearCart() {
	s.cart = nil
}

// Len is the number of cart entries
func (s *OrderSession) Len() int {
	return len(s.cart)
}

// Cart returns the cart entries in the order they were added
func (s *OrderSession) Cart() []models.CartEntry {
	entries := make([]models.CartEntry, len(s.cart))
	for i, p := range s.cart {
		entries[i] = models.CartEntry{Position: i, Product: p}
	}
	return entries
}

// ComputeTotal prices the current cart for orderType without changing the selection
func (s *OrderSession) ComputeTotal(orderType models.OrderType) pricing.Breakdown {
	prices := make([]decimal.Decimal, len(s.cart))
	for i, p := range s.cart {
		prices[i] = p.Price
	}
	return pricing.Compute(prices, orderType, s.pricing)
}

// Total prices the current cart for the selected order type
func (s *OrderSession) Total() pricing.Breakdown {
	return s.ComputeTotal(s.orderType)
}

// DisplayTotal is the total formatted with two decimals
func (s *OrderSession) DisplayTotal() string {
	return s.Total().Display()
}

// FinishOrder validates that the cart is not empty and returns the final pricing.
// The cart is left as it is.
func (s *OrderSession) FinishOrder() (pricing.Breakdown, error) {
	if len(s.cart) == 0 {
		return pricing.Breakdown{}, ErrEmptyCart
	}
	return s.Total(), nil
}
