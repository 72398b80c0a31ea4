package pricing

import (
	"errors"
	"fmt"

	"github.com/Lixing-Zhang/kart-challenge/counter-pos/internal/models"
	"github.com/shopspring/decimal"
)

// Places is the display and rounding precision of every amount
const Places = 2

var ErrNegativeSurcharge = errors.New("surcharge rates and fees must not be negative")

// Config holds the surcharges layered on the subtotal
type Config struct {
	VATRate     decimal.Decimal
	ServiceRate decimal.Decimal
	DeliveryFee decimal.Decimal
}

// DefaultConfig returns 14% VAT, a 10% dine-in service charge and a flat 15.00 delivery fee.
func DefaultConfig() Config {
	return Config{
		VATRate:     decimal.RequireFromString("0.14"),
		ServiceRate: decimal.RequireFromString("0.10"),
		DeliveryFee: decimal.RequireFromString("15.00"),
	}
}

// Validate checks that no surcharge is negative
func (c Config) Validate() error {
	if c.VATRate.IsNegative() {
		return fmt.Errorf("vat rate %s: %w", c.VATRate, ErrNegativeSurcharge)
	}
	if c.ServiceRate.IsNegative() {
		return fmt.Errorf("service rate %s: %w", c.ServiceRate, ErrNegativeSurcharge)
	}
	if c.DeliveryFee.IsNegative() {
		return fmt.Errorf("delivery fee %s: %w", c.DeliveryFee, ErrNegativeSurcharge)
	}
	return nil
}

// Breakdown is the full pricing of a cart for one order type
type Breakdown struct {
	OrderType models.OrderType
	Subtotal  decimal.Decimal
	VAT       decimal.Decimal
	Service   decimal.Decimal
	Delivery  decimal.Decimal
	Total     decimal.Decimal
}

// Compute prices a cart. VAT always applies, service only for dine-in and the
// delivery fee only for delivery of a non-empty cart. Each surcharge is rounded
// to cents before it is added so the printed lines sum to the printed total.
func Compute(prices []decimal.Decimal, orderType models.OrderType, cfg Config) Breakdown {
	subtotal := decimal.Zero
	for _, p := range prices {
		subtotal = subtotal.Add(p)
	}

	b := Breakdown{
		OrderType: orderType,
		Subtotal:  subtotal,
		VAT:       subtotal.Mul(cfg.VATRate).Round(Places),
		Service:   decimal.Zero,
		Delivery:  decimal.Zero,
	}

	switch orderType {
	case models.OrderTypeDineIn:
		b.Service = subtotal.Mul(cfg.ServiceRate).Round(Places)
	case models.OrderTypeDelivery:
		if len(prices) > 0 {
			b.Delivery = cfg.DeliveryFee
		}
	}

	b.Total = b.Subtotal.Add(b.VAT).Add(b.Service).Add(b.Delivery)
	return b
}

// Display renders the total with two decimals
func (b Breakdown) Display() string {
	return FormatAmount(b.Total)
}

// FormatAmount renders an amount with two decimals, e.g. 161.20
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(Places)
}
