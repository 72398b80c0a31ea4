package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/kart-challenge/counter-pos/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/counter-pos/internal/service"
	"github.com/Lixing-Zhang/kart-challenge/counter-pos/internal/session"
	"github.com/go-chi/chi/v5"
)

// SessionHandler exposes order sessions to the counter front end
type SessionHandler struct {
	sessions *service.SessionService
	currency string
	log      *slog.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *service.SessionService, currency string, log *slog.Logger) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		currency: currency,
		log:      log,
	}
}

// CategoryRequest is the body of PUT /api/session/{sessionId}/category
type CategoryRequest struct {
	Category string `json:"category"`
}

// SearchRequest is the body of PUT /api/session/{sessionId}/search
type SearchRequest struct {
	Search string `json:"search"`
}

// OrderTypeRequest is the body of PUT /api/session/{sessionId}/order-type
type OrderTypeRequest struct {
	OrderType string `json:"orderType"`
}

// AddProductRequest is the body of POST /api/session/{sessionId}/cart
type AddProductRequest struct {
	ProductID string `json:"productId"`
}

// Routes mounts the session endpoints on r
func (h *SessionHandler) Routes(r chi.Router) {
	r.Post("/", h.CreateSession)
	r.Route("/{sessionId}", func(r chi.Router) {
		r.Get("/", h.GetSession)
		r.Delete("/", h.DeleteSession)
		r.Put("/category", h.SelectCategory)
		r.Put("/search", h.SetSearchText)
		r.Put("/order-type", h.SelectOrderType)
		r.Post("/cart", h.AddProduct)
		r.Delete("/cart", h.ClearCart)
		r.Delete("/cart/last", h.RemoveLastCartEntry)
		r.Post("/finish", h.FinishOrder)
		r.Get("/total", h.GetTotal)
	})
}

// CreateSession handles POST /api/session
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	state, err := h.sessions.Create(r.Context())
	if err != nil {
		h.writeServiceError(w, "failed to create session", err)
		return
	}

	WriteJSON(w, http.StatusCreated, toSessionResponse(state, h.currency), h.log)
}

// GetSession handles GET /api/session/{sessionId}
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	state, err := h.sessions.Get(r.Context(), chi.URLParam(r, "sessionId"))
	h.respond(w, "failed to get session", state, err)
}

// DeleteSession handles DELETE /api/session/{sessionId}
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Delete(r.Context(), chi.URLParam(r, "sessionId")); err != nil {
		h.writeServiceError(w, "failed to delete session", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SelectCategory handles PUT /api/session/{sessionId}/category
func (h *SessionHandler) SelectCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if !h.decode(w, r, &req) {
		return
	}

	state, err := h.sessions.SelectCategory(r.Context(), chi.URLParam(r, "sessionId"), req.Category)
	h.respond(w, "failed to select category", state, err)
}

// SetSearchText handles PUT /api/session/{sessionId}/search
func (h *SessionHandler) SetSearchText(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if !h.decode(w, r, &req) {
		return
	}

	state, err := h.sessions.SetSearchText(r.Context(), chi.URLParam(r, "sessionId"), req.Search)
	h.respond(w, "failed to set search text", state, err)
}

// SelectOrderType handles PUT /api/session/{sessionId}/order-type
func (h *SessionHandler) SelectOrderType(w http.ResponseWriter, r *http.Request) {
	var req OrderTypeRequest
	if !h.decode(w, r, &req) {
		return
	}

	orderType, err := models.ParseOrderType(req.OrderType)
	if err != nil {
		h.log.Warn("invalid order type", "orderType", req.OrderType)
		WriteError(w, http.StatusBadRequest, "Invalid order type", h.log)
		return
	}

	state, err := h.sessions.SelectOrderType(r.Context(), chi.URLParam(r, "sessionId"), orderType)
	h.respond(w, "failed to select order type", state, err)
}

// AddProduct handles POST /api/session/{sessionId}/cart
func (h *SessionHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	var req AddProductRequest
	if !h.decode(w, r, &req) {
		return
	}

	state, err := h.sessions.AddProduct(r.Context(), chi.URLParam(r, "sessionId"), req.ProductID)
	h.respond(w, "failed to add product", state, err)
}

// RemoveLastCartEntry handles DELETE /api/session/{sessionId}/cart/last
func (h *SessionHandler) RemoveLastCartEntry(w http.ResponseWriter, r *http.Request) {
	state, err := h.sessions.RemoveLastCartEntry(r.Context(), chi.URLParam(r, "sessionId"))
	h.respond(w, "failed to remove cart entry", state, err)
}

// ClearCart handles DELETE /api/session/{sessionId}/cart
func (h *SessionHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	state, err := h.sessions.ClearCart(r.Context(), chi.URLParam(r, "sessionId"))
	h.respond(w, "failed to clear cart", state, err)
}

// FinishOrder handles POST /api/session/{sessionId}/finish
// - 200: the priced order
// - 400: Cart is empty
func (h *SessionHandler) FinishOrder(w http.ResponseWriter, r *http.Request) {
	state, err := h.sessions.FinishOrder(r.Context(), chi.URLParam(r, "sessionId"))
	if err != nil {
		h.writeServiceError(w, "failed to finish order", err)
		return
	}

	WriteJSON(w, http.StatusOK, toBreakdownResponse(state.Breakdown, h.currency), h.log)
}

// GetTotal handles GET /api/session/{sessionId}/total
func (h *SessionHandler) GetTotal(w http.ResponseWriter, r *http.Request) {
	total, err := h.sessions.DisplayTotal(r.Context(), chi.URLParam(r, "sessionId"))
	if err != nil {
		h.writeServiceError(w, "failed to get total", err)
		return
	}

	WriteJSON(w, http.StatusOK, TotalResponse{Total: total, Currency: h.currency}, h.log)
}

func (h *SessionHandler) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.log.Warn("failed to decode request body", "path", r.URL.Path, "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return false
	}
	return true
}

func (h *SessionHandler) respond(w http.ResponseWriter, msg string, state *service.SessionState, err error) {
	if err != nil {
		h.writeServiceError(w, msg, err)
		return
	}

	WriteJSON(w, http.StatusOK, toSessionResponse(state, h.currency), h.log)
}

// writeServiceError maps service and session errors to HTTP statuses
func (h *SessionHandler) writeServiceError(w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		h.log.Info(msg, "error", err)
		WriteError(w, http.StatusNotFound, "Session not found", h.log)
	case errors.Is(err, session.ErrEmptyCart):
		h.log.Info(msg, "error", err)
		WriteError(w, http.StatusBadRequest, "Cart is empty", h.log)
	case errors.Is(err, session.ErrUnknownProduct):
		h.log.Info(msg, "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid product", h.log)
	case errors.Is(err, session.ErrUnknownCategory):
		h.log.Info(msg, "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid category", h.log)
	default:
		h.log.Error(msg, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
	}
}
