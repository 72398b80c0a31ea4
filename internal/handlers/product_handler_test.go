package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Lixing-Zhang/kart-challenge/counter-pos/internal/repository"
	"github.com/Lixing-Zhang/kart-challenge/counter-pos/internal/service"
	"github.com/Lixing-Zhang/kart-challenge/counter-pos/pkg/logger"
	"github.com/go-chi/chi/v5"
)

func newProductRouter() *chi.Mux {
	repo := repository.NewInMemoryProductRepository()
	svc := service.NewProductService(repo)
	log := logger.New("error")
	handler := NewProductHandler(svc, log)

	r := chi.NewRouter()
	r.Get("/api/product", handler.ListProducts)
	r.Get("/api/product/{productId}", handler.GetProduct)
	r.Get("/api/category", handler.ListCategories)
	return r
}

func TestListProducts(t *testing.T) {
	r := newProductRouter()

	tests := []struct {
		name      string
		query     string
		wantNames []string
	}{
		{
			name:      "full catalog in menu order",
			query:     "",
			wantNames: []string{"Arabic Shawarma", "Shawarma Plate", "Sandwich", "Fries", "Soft Drink", "Mineral Water"},
		},
		{
			name:      "category filter",
			query:     "?category=drinks",
			wantNames: []string{"Soft Drink", "Mineral Water"},
		},
		{
			name:      "wildcard with search",
			query:     "?category=all&search=shawarma",
			wantNames: []string{"Arabic Shawarma", "Shawarma Plate"},
		},
		{
			name:      "case insensitive search",
			query:     "?search=WATER",
			wantNames: []string{"Mineral Water"},
		},
		{
			name:      "no match",
			query:     "?category=sides&search=plate",
			wantNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/product"+tt.query, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", w.Code)
			}

			var products []ProductResponse
			if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if len(products) != len(tt.wantNames) {
				t.Fatalf("expected %d products, got %d", len(tt.wantNames), len(products))
			}
			for i, name := range tt.wantNames {
				if products[i].Name != name {
					t.Errorf("position %d: expected %s, got %s", i, name, products[i].Name)
				}
			}
		})
	}
}

func TestGetProduct_Success(t *testing.T) {
	r := newProductRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/product/1", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var product ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&product); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if product.ID != "1" {
		t.Errorf("expected product ID 1, got %s", product.ID)
	}

	if product.Name != "Arabic Shawarma" {
		t.Errorf("expected product name 'Arabic Shawarma', got %s", product.Name)
	}

	if product.Price != "55.00" {
		t.Errorf("expected product price 55.00, got %s", product.Price)
	}

	if product.Category != "shawarma" {
		t.Errorf("expected product category 'shawarma', got %s", product.Category)
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	r := newProductRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/product/999", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}

	var response ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}

	if response.Error != "Product not found" {
		t.Errorf("expected error message 'Product not found', got %s", response.Error)
	}
}

func TestGetProduct_InvalidID(t *testing.T) {
	r := newProductRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/product/%20", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestListCategories(t *testing.T) {
	r := newProductRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/category", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var categories []string
	if err := json.NewDecoder(w.Body).Decode(&categories); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	want := []string{"all", "shawarma", "sandwiches", "sides", "drinks"}
	if len(categories) != len(want) {
		t.Fatalf("expected %v, got %v", want, categories)
	}
	for i := range want {
		if categories[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], categories[i])
		}
	}
}
