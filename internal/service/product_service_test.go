package service

import (
	"context"
	"testing"

	"github.com/Lixing-Zhang/kart-challenge/counter-pos/internal/catalog"
	"github.com/Lixing-Zhang/kart-challenge/counter-pos/internal/repository"
)

func TestProductService_ListProducts(t *testing.T) {
	svc := NewProductService(repository.NewInMemoryProductRepository())

	tests := []struct {
		name   string
		filter catalog.Filter
		want   int
	}{
		{"no filter", catalog.Filter{}, 6},
		{"wildcard", catalog.Filter{Category: catalog.AllCategories}, 6},
		{"drinks", catalog.Filter{Category: "drinks"}, 2},
		{"search", catalog.Filter{Search: "fri"}, 1},
		{"no match", catalog.Filter{Category: "sides", Search: "water"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := svc.ListProducts(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("ListProducts() unexpected error = %v", err)
			}
			if len(products) != tt.want {
				t.Errorf("ListProducts() returned %d products, want %d", len(products), tt.want)
			}
		})
	}
}

func TestProductService_Categories(t *testing.T) {
	svc := NewProductService(repository.NewInMemoryProductRepository())

	categories, err := svc.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories() unexpected error = %v", err)
	}

	want := []string{"all", "shawarma", "sandwiches", "sides", "drinks"}
	if len(categories) != len(want) {
		t.Fatalf("Categories() = %v, want %v", categories, want)
	}
	for i := range want {
		if categories[i] != want[i] {
			t.Errorf("Categories()[%d] = %s, want %s", i, categories[i], want[i])
		}
	}
}
