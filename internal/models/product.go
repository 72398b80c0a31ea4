package models

import "github.com/shopspring/decimal"

// Product represents a menu item sold at the counter.
// Products are built once from the catalog and never mutated.
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
}
