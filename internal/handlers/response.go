package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/Lixing-Zhang/kart-challenge/counter-pos/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/counter-pos/internal/pricing"
	"github.com/Lixing-Zhang/kart-challenge/counter-pos/internal/service"
)

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an error response in JSON format
func WriteError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	WriteJSON(w, status, ErrorResponse{Error: message}, logger)
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ProductResponse is a product with its price rendered to two decimals
type ProductResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    string `json:"price"`
}

// CartEntryResponse is one line of the cart list
type CartEntryResponse struct {
	Position int             `json:"position"`
	Product  ProductResponse `json:"product"`
}

// BreakdownResponse is the priced order
type BreakdownResponse struct {
	OrderType string `json:"orderType"`
	Subtotal  string `json:"subtotal"`
	VAT       string `json:"vat"`
	Service   string `json:"service"`
	Delivery  string `json:"delivery"`
	Total     string `json:"total"`
	Currency  string `json:"currency"`
}

// FilterResponse is the product grid filter
type FilterResponse struct {
	Category string `json:"category"`
	Search   string `json:"search"`
}

// SessionResponse is everything a counter screen renders
type SessionResponse struct {
	ID           string              `json:"id"`
	CreatedAt    time.Time           `json:"createdAt"`
	Filter       FilterResponse      `json:"filter"`
	Products     []ProductResponse   `json:"products"`
	Cart         []CartEntryResponse `json:"cart"`
	OrderType    string              `json:"orderType"`
	Breakdown    BreakdownResponse   `json:"breakdown"`
	DisplayTotal string              `json:"displayTotal"`
}

// TotalResponse is the formatted total only
type TotalResponse struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Price:    pricing.FormatAmount(p.Price),
	}
}

func toProductResponses(products []models.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out
}

func toBreakdownResponse(b pricing.Breakdown, currency string) BreakdownResponse {
	return BreakdownResponse{
		OrderType: string(b.OrderType),
		Subtotal:  pricing.FormatAmount(b.Subtotal),
		VAT:       pricing.FormatAmount(b.VAT),
		Service:   pricing.FormatAmount(b.Service),
		Delivery:  pricing.FormatAmount(b.Delivery),
		Total:     b.Display(),
		Currency:  currency,
	}
}

func toSessionResponse(state *service.SessionState, currency string) SessionResponse {
	cart := make([]CartEntryResponse, len(state.Cart))
	for i, e := range state.Cart {
		cart[i] = CartEntryResponse{Position: e.Position, Product: toProductResponse(e.Product)}
	}

	return SessionResponse{
		ID:        state.ID,
		CreatedAt: state.CreatedAt,
		Filter: FilterResponse{
			Category: state.Filter.Category,
			Search:   state.Filter.Search,
		},
		Products:     toProductResponses(state.Visible),
		Cart:         cart,
		OrderType:    string(state.OrderType),
		Breakdown:    toBreakdownResponse(state.Breakdown, currency),
		DisplayTotal: state.Breakdown.Display(),
	}
}
