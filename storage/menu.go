package storage

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/atomic"

	"github.com/bellacucina/api/models"
	"github.com/bellacucina/api/pricing"
)

const menuIDPrefix = "menu-"

// MenuStore is the mutable menu catalog. Items keep insertion order.
type MenuStore struct {
	mu     sync.RWMutex
	items  []models.MenuItem
	nextID *atomic.Int64
}

// NewMenuStore seeds the store and positions the id counter above the
// highest seeded id so generated ids never collide.
func NewMenuStore(seed []models.MenuItem) *MenuStore {
	s := &MenuStore{
		items:  append([]models.MenuItem(nil), seed...),
		nextID: atomic.NewInt64(0),
	}
	for _, item := range seed {
		if n, err := strconv.Atoi(strings.TrimPrefix(item.ID, menuIDPrefix)); err == nil && int64(n) > s.nextID.Load() {
			s.nextID.Store(int64(n))
		}
	}
	return s
}

type MenuFilter struct {
	Category  string
	Available *bool
}

// List returns the items matching the filter. Category matching is
// case-insensitive, as the original API behaved.
func (s *MenuStore) List(filter MenuFilter) []models.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]models.MenuItem, 0, len(s.items))
	for _, item := range s.items {
		if filter.Category != "" && !strings.EqualFold(string(item.Category), filter.Category) {
			continue
		}
		if filter.Available != nil && item.Available != *filter.Available {
			continue
		}
		res = append(res, item)
	}
	return res
}

func (s *MenuStore) Get(id string) (models.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return models.MenuItem{}, ErrNotFound
}

func (s *MenuStore) Count() (total, available int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.Available {
			available++
		}
	}
	return len(s.items), available
}

// Create validates the payload, assigns a fresh id and appends the item.
// Availability defaults to true when omitted.
func (s *MenuStore) Create(p models.CreateMenuItemPayload) (models.MenuItem, error) {
	if err := p.Validate(); err != nil {
		return models.MenuItem{}, err
	}

	available := true
	if p.Available != nil {
		available = *p.Available
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := models.MenuItem{
		ID:          fmt.Sprintf("%s%d", menuIDPrefix, s.nextID.Inc()),
		Name:        strings.TrimSpace(p.Name),
		Description: strings.TrimSpace(p.Description),
		Price:       pricing.Round2(p.Price),
		Category:    p.Category,
		Image:       p.Image,
		Available:   available,
	}
	s.items = append(s.items, item)
	return item, nil
}

// Update applies the supplied fields to an existing item.
func (s *MenuStore) Update(id string, p models.UpdateMenuItemPayload) (models.MenuItem, error) {
	if err := p.Validate(); err != nil {
		return models.MenuItem{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		if p.Name != nil {
			s.items[i].Name = strings.TrimSpace(*p.Name)
		}
		if p.Description != nil {
			s.items[i].Description = strings.TrimSpace(*p.Description)
		}
		if p.Price != nil {
			s.items[i].Price = pricing.Round2(*p.Price)
		}
		if p.Category != nil {
			s.items[i].Category = *p.Category
		}
		if p.Image != nil {
			s.items[i].Image = *p.Image
		}
		if p.Available != nil {
			s.items[i].Available = *p.Available
		}
		return s.items[i], nil
	}
	return models.MenuItem{}, ErrNotFound
}

// Delete removes the item permanently. Deleting an unknown (or already
// deleted) id reports ErrNotFound, not a silent success.
func (s *MenuStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
