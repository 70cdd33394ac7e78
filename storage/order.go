package storage

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/atomic"

	"github.com/bellacucina/api/models"
	"github.com/bellacucina/api/pricing"
	"github.com/bellacucina/api/workflow"
)

const orderIDPrefix = "ORD-"

// OrderStore is the mutable order collection. Orders are only ever created
// and status-updated, never deleted; pricing fields are computed once at
// creation and never touched again.
type OrderStore struct {
	mu     sync.RWMutex
	orders []models.Order
	nextID *atomic.Int64
}

func NewOrderStore(seed []models.Order) *OrderStore {
	s := &OrderStore{
		orders: append([]models.Order(nil), seed...),
		nextID: atomic.NewInt64(0),
	}
	for _, o := range seed {
		if n, err := strconv.Atoi(strings.TrimPrefix(o.ID, orderIDPrefix)); err == nil && int64(n) > s.nextID.Load() {
			s.nextID.Store(int64(n))
		}
	}
	return s
}

type OrderFilter struct {
	Status string
}

// List returns matching orders, newest first.
func (s *OrderStore) List(filter OrderFilter) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if filter.Status != "" && !strings.EqualFold(string(o.Status), filter.Status) {
			continue
		}
		res = append(res, o)
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].CreatedAt.After(res[j].CreatedAt)
	})
	return res
}

func (s *OrderStore) Get(id string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, ErrNotFound
}

// Create validates the payload, computes subtotal/tax/total server-side
// and stores the order as Pending. This is the only place pricing fields
// are ever written.
func (s *OrderStore) Create(p models.CreateOrderPayload) (models.Order, error) {
	if err := p.Validate(); err != nil {
		return models.Order{}, err
	}

	subtotal := pricing.Subtotal(p.Items)
	tax := pricing.Tax(subtotal)
	total := pricing.Total(subtotal, tax)

	s.mu.Lock()
	defer s.mu.Unlock()

	order := models.Order{
		ID:                  fmt.Sprintf("%s%03d", orderIDPrefix, s.nextID.Inc()),
		CustomerName:        strings.TrimSpace(p.CustomerName),
		Email:               strings.TrimSpace(p.Email),
		Phone:               strings.TrimSpace(p.Phone),
		OrderType:           p.OrderType,
		Address:             strings.TrimSpace(p.Address),
		Items:               append([]models.OrderItem(nil), p.Items...),
		Subtotal:            subtotal,
		Tax:                 tax,
		Total:               total,
		Status:              models.StatusPending,
		SpecialInstructions: strings.TrimSpace(p.SpecialInstructions),
		CreatedAt:           time.Now(),
	}
	s.orders = append(s.orders, order)
	return order, nil
}

// SetStatus moves an order through the status workflow. Illegal moves
// return *workflow.InvalidTransitionError and leave the order untouched.
func (s *OrderStore) SetStatus(id string, status models.OrderStatus) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		if err := workflow.Transition(s.orders[i].Status, status); err != nil {
			return models.Order{}, err
		}
		s.orders[i].Status = status
		return s.orders[i], nil
	}
	return models.Order{}, ErrNotFound
}
