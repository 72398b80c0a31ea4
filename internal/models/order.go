package models

import (
	"errors"
	"strings"
)

var ErrInvalidOrderType = errors.New("invalid order type")

// OrderType selects which surcharge applies on top of VAT
type OrderType string

const (
	// OrderTypeNone is the unset selector, a plain takeaway order.
	OrderTypeNone     OrderType = "none"
	OrderTypeDineIn   OrderType = "dine_in"
	OrderTypeDelivery OrderType = "delivery"
)

// ParseOrderType accepts the wire names of the order types.
// The empty string and "takeaway" both map to OrderTypeNone.
func ParseOrderType(s string) (OrderType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "takeaway":
		return OrderTypeNone, nil
	case "dine_in", "dine-in", "dinein":
		return OrderTypeDineIn, nil
	case "delivery":
		return OrderTypeDelivery, nil
	default:
		return "", ErrInvalidOrderType
	}
}

// CartEntry is one product added to the order.
// Adding the same product twice yields two entries.
type CartEntry struct {
	Position int     `json:"position"`
	Product  Product `json:"product"`
}
