package repository

import (
	"context"
	"testing"
)

func TestInMemoryProductRepository_GetAll(t *testing.T) {
	repo := NewInMemoryProductRepository()

	products, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"1", "2", "3", "4", "5", "6"}
	if len(products) != len(want) {
		t.Fatalf("expected %d products, got %d", len(want), len(products))
	}
	for i, id := range want {
		if products[i].ID != id {
			t.Errorf("position %d: expected id %s, got %s", i, id, products[i].ID)
		}
	}

	// callers get a copy
	products[0].Name = "changed"
	again, _ := repo.GetAll(context.Background())
	if again[0].Name != "Arabic Shawarma" {
		t.Errorf("repository was mutated through GetAll result: %s", again[0].Name)
	}
}

func TestInMemoryProductRepository_GetByID(t *testing.T) {
	repo := NewInMemoryProductRepository()

	product, err := repo.GetByID(context.Background(), "2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.Name != "Shawarma Plate" {
		t.Errorf("expected Shawarma Plate, got %s", product.Name)
	}
	if product.Price.StringFixed(2) != "75.00" {
		t.Errorf("expected 75.00, got %s", product.Price.StringFixed(2))
	}

	if _, err := repo.GetByID(context.Background(), "99"); err != ErrProductNotFound {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}
