package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/Lixing-Zhang/kart-challenge/counter-pos/internal/catalog"
	"github.com/Lixing-Zhang/kart-challenge/counter-pos/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/counter-pos/internal/pricing"
	"github.com/Lixing-Zhang/kart-challenge/counter-pos/internal/repository"
	"github.com/Lixing-Zhang/kart-challenge/counter-pos/internal/session"
	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("session not found")
)

// SessionState is a point-in-time view of one order session
type SessionState struct {
	ID        string
	CreatedAt time.Time
	Filter    catalog.Filter
	Visible   []models.Product
	Cart      []models.CartEntry
	OrderType models.OrderType
	Breakdown pricing.Breakdown
}

// SessionService keeps the open counter sessions in memory.
// All session access goes through mu.
type SessionService struct {
	productRepo repository.ProductRepository
	pricing     pricing.Config
	log         *slog.Logger

	mu       sync.Mutex
	sessions map[string]*entry
}

type entry struct {
	createdAt time.Time
	session   *session.OrderSession
}

// NewSessionService creates a new session service
func NewSessionService(productRepo repository.ProductRepository, cfg pricing.Config, log *slog.Logger) *SessionService {
	return &SessionService{
		productRepo: productRepo,
		pricing:     cfg,
		log:         log,
		sessions:    make(map[string]*entry),
	}
}

// Create opens a new empty session over the current catalog
func (s *SessionService) Create(ctx context.Context) (*SessionState, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	id := generateSessionID()
	e := &entry{
		createdAt: time.Now().UTC(),
		session:   session.New(products, s.pricing),
	}

	s.mu.Lock()
	s.sessions[id] = e
	open := len(s.sessions)
	s.mu.Unlock()

	s.log.Info("session created", "session_id", id, "open_sessions", open)
	return snapshot(id, e), nil
}

// Get returns the current state of a session
func (s *SessionService) Get(ctx context.Context, id string) (*SessionState, error) {
	return s.with(id, func(*session.OrderSession) error { return nil })
}

// Delete drops a session
func (s *SessionService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)

	s.log.Info("session deleted", "session_id", id)
	return nil
}

// SelectCategory changes the grid's category selector
func (s *SessionService) SelectCategory(ctx context.Context, id, category string) (*SessionState, error) {
	return s.with(id, func(sess *session.OrderSession) error {
		_, err := sess.SelectCategory(category)
		return err
	})
}

// SetSearchText changes the grid's search text
func (s *SessionService) SetSearchText(ctx context.Context, id, text string) (*SessionState, error) {
	return s.with(id, func(sess *session.OrderSession) error {
		sess.SetSearchText(text)
		return nil
	})
}

// SelectOrderType changes the order type
func (s *SessionService) SelectOrderType(ctx context.Context, id string, orderType models.OrderType) (*SessionState, error) {
	return s.with(id, func(sess *session.OrderSession) error {
		b := sess.SelectOrderType(orderType)
		s.log.Debug("order type selected", "session_id", id, "order_type", orderType, "total", b.Display())
		return nil
	})
}

// AddProduct appends a catalog product to the cart
func (s *SessionService) AddProduct(ctx context.Context, id, productID string) (*SessionState, error) {
	return s.with(id, func(sess *session.OrderSession) error {
		product, err := sess.AddProduct(productID)
		if err != nil {
			return err
		}
		s.log.Info("product added to cart",
			"session_id", id,
			"product_id", product.ID,
			"cart_size", sess.Len(),
		)
		return nil
	})
}

// RemoveLastCartEntry drops the most recent cart entry, if any
func (s *SessionService) RemoveLastCartEntry(ctx context.Context, id string) (*SessionState, error) {
	return s.with(id, func(sess *session.OrderSession) error {
		if sess.RemoveLast() {
			s.log.Info("last cart entry removed", "session_id", id, "cart_size", sess.Len())
		}
		return nil
	})
}

// ClearCart empties the cart
func (s *SessionService) ClearCart(ctx context.Context, id string) (*SessionState, error) {
	return s.with(id, func(sess *session.OrderSession) error {
		sess.ClearCart()
		s.log.Info("cart cleared", "session_id", id)
		return nil
	})
}

// FinishOrder validates the cart and returns the final pricing.
// The session and its cart are left untouched.
func (s *SessionService) FinishOrder(ctx context.Context, id string) (*SessionState, error) {
	return s.with(id, func(sess *session.OrderSession) error {
		b, err := sess.FinishOrder()
		if err != nil {
			return err
		}
		s.log.Info("order finished",
			"session_id", id,
			"order_type", b.OrderType,
			"items_count", sess.Len(),
			"total", b.Display(),
		)
		return nil
	})
}

// DisplayTotal returns the session total with two decimals
func (s *SessionService) DisplayTotal(ctx context.Context, id string) (string, error) {
	state, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return state.Breakdown.Display(), nil
}

// with runs fn on the session under the registry lock and snapshots the result.
// The snapshot is taken even when fn fails so callers see the unchanged state.
func (s *SessionService) with(id string, fn func(*session.OrderSession) error) (*SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	err := fn(e.session)
	return snapshot(id, e), err
}

func snapshot(id string, e *entry) *SessionState {
	return &SessionState{
		ID:        id,
		CreatedAt: e.createdAt,
		Filter:    e.session.Filter(),
		Visible:   e.session.VisibleProducts(),
		Cart:      e.session.Cart(),
		OrderType: e.session.OrderType(),
		Breakdown: e.session.Total(),
	}
}

// generateSessionID generates a unique session ID using UUID
func generateSessionID() string {
	return uuid.New().String()
}
