package catalog

import (
	"testing"

	"github.com/Lixing-Zhang/kart-challenge/counter-pos/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testProducts() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Arabic Shawarma", Category: "shawarma", Price: decimal.NewFromInt(55)},
		{ID: "2", Name: "Shawarma Plate", Category: "shawarma", Price: decimal.NewFromInt(75)},
		{ID: "3", Name: "Sandwich", Category: "sandwiches", Price: decimal.NewFromInt(35)},
		{ID: "4", Name: "Fries", Category: "sides", Price: decimal.NewFromInt(25)},
		{ID: "5", Name: "Soft Drink", Category: "drinks", Price: decimal.NewFromInt(15)},
		{ID: "6", Name: "Mineral Water", Category: "drinks", Price: decimal.NewFromInt(10)},
		{ID: "7", Name: "صحن شاورما", Category: "shawarma", Price: decimal.NewFromInt(80)},
	}
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestApply(t *testing.T) {
	products := testProducts()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"all with empty search returns catalog in order", Filter{Category: AllCategories}, []string{"1", "2", "3", "4", "5", "6", "7"}},
		{"empty selector is the wildcard", Filter{}, []string{"1", "2", "3", "4", "5", "6", "7"}},
		{"category only", Filter{Category: "drinks"}, []string{"5", "6"}},
		{"search is case insensitive", Filter{Category: AllCategories, Search: "SHAWARMA"}, []string{"1", "2"}},
		{"search matches inside the name", Filter{Search: "wat"}, []string{"6"}},
		{"category and search combine", Filter{Category: "shawarma", Search: "plate"}, []string{"2"}},
		{"category excludes search hits", Filter{Category: "drinks", Search: "shawarma"}, []string{}},
		{"search whitespace is ignored", Filter{Search: "  fries "}, []string{"4"}},
		{"arabic search", Filter{Search: "شاورما"}, []string{"7"}},
		{"unknown category yields nothing", Filter{Category: "desserts"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(products, tt.filter)
			assert.Equal(t, tt.want, ids(got))

			for _, p := range got {
				assert.True(t, tt.filter.Match(p), "product %s should match", p.ID)
			}
		})
	}
}

func TestApply_DoesNotModifyInput(t *testing.T) {
	products := testProducts()
	visible := Apply(products, Filter{Category: "drinks"})
	visible[0].Name = "changed"

	assert.Equal(t, "Arabic Shawarma", products[0].Name)
	assert.Equal(t, "Soft Drink", products[4].Name)
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{"shawarma", "sandwiches", "sides", "drinks"}, Categories(testProducts()))
	assert.Empty(t, Categories(nil))
}

func TestHasCategory(t *testing.T) {
	products := testProducts()

	assert.True(t, HasCategory(products, AllCategories))
	assert.True(t, HasCategory(products, ""))
	assert.True(t, HasCategory(products, "sides"))
	assert.False(t, HasCategory(products, "desserts"))
}
