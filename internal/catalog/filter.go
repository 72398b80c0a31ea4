package catalog

import (
	"strings"

	"github.com/Lixing-Zhang/kart-challenge/counter-pos/internal/models"
	"golang.org/x/text/cases"
)

// AllCategories is the category selector wildcard
const AllCategories = "all"

// Filter is the category selector plus free-text search of the product grid
type Filter struct {
	Category string `json:"category"`
	Search   string `json:"search"`
}

// MatchesAllCategories reports whether the category selector is the wildcard.
// An empty selector counts as the wildcard.
func (f Filter) MatchesAllCategories() bool {
	return f.Category == "" || strings.EqualFold(f.Category, AllCategories)
}

// Match reports whether p passes both the category and the search predicate
func (f Filter) Match(p models.Product) bool {
	if !f.MatchesAllCategories() && p.Category != f.Category {
		return false
	}

	search := strings.TrimSpace(f.Search)
	if search == "" {
		return true
	}

	fold := cases.Fold()
	return strings.Contains(fold.String(p.Name), fold.String(search))
}

// Apply returns the products passing f in catalog order.
// The result is a fresh slice; products is never modified.
func Apply(products []models.Product, f Filter) []models.Product {
	visible := make([]models.Product, 0, len(products))
	for _, p := range products {
		if f.Match(p) {
			visible = append(visible, p)
		}
	}
	return visible
}

// Categories lists the distinct categories in first-seen order
func Categories(products []models.Product) []string {
	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, p := range products {
		if seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	return categories
}

// HasCategory reports whether tag is the wildcard or a category of products
func HasCategory(products []models.Product, tag string) bool {
	if (Filter{Category: tag}).MatchesAllCategories() {
		return true
	}
	for _, p := range products {
		if p.Category == tag {
			return true
		}
	}
	return false
}
