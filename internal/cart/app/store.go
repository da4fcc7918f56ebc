package app

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/furnistore/storefront/internal/cart/domain"
)

var ErrInvalidInput = errors.New("invalid input")

// ProductSnapshot carries the product fields the cart denormalizes into a
// line item at add time.
type ProductSnapshot struct {
	ID       string
	Name     string
	Price    domain.Money
	ImageRef string
}

// Store holds the authoritative in-memory cart and mirrors it to a durable
// slot after every mutation. A nil slot means memory-only operation for the
// session. Persistence failures degrade to in-memory state; they are logged
// and never surfaced to the caller.
//
// Handlers run on multiple goroutines, so the store serializes its own
// mutations.
type Store struct {
	mu    sync.Mutex
	slot  Slot
	log   *slog.Logger
	lines []domain.LineItem
}

func NewStore(slot Slot, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{slot: slot, log: log}
}

// Load initializes the cart from the persisted slot. Absent, malformed or
// unreadable data yields an empty cart; Load never returns an error. Lines
// with a blank product id or quantity below 1 are dropped.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	if s.slot == nil {
		return
	}

	data, err := s.slot.Read(ctx)
	if err != nil {
		if !errors.Is(err, ErrSlotEmpty) {
			s.log.Warn("cart slot read failed, starting empty", slog.Any("err", err))
		}
		return
	}

	var lines []domain.LineItem
	if err := json.Unmarshal(data, &lines); err != nil {
		s.log.Warn("persisted cart is malformed, starting empty", slog.Any("err", err))
		return
	}

	for _, l := range lines {
		if strings.TrimSpace(l.ProductID) == "" || l.Quantity < 1 {
			continue
		}
		s.lines = append(s.lines, l)
	}
}

// AddItem merges the product into the cart. Lines are keyed by
// (product id, size): an existing line's quantity is incremented, otherwise a
// new line snapshotting the product is appended. Returns the updated cart so
// the view can present it.
func (s *Store) AddItem(ctx context.Context, p ProductSnapshot, quantity int32, size, color string) (domain.Cart, error) {
	if strings.TrimSpace(p.ID) == "" {
		return domain.Cart{}, ErrInvalidInput
	}
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return domain.Cart{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := false
	for i := range s.lines {
		if s.lines[i].ProductID == p.ID && s.lines[i].Size == size {
			s.lines[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.lines = append(s.lines, domain.LineItem{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			ImageRef:  p.ImageRef,
			Quantity:  quantity,
			Size:      size,
			Color:     color,
		})
	}

	s.persist(ctx)
	return s.snapshot(), nil
}

// RemoveItem drops every line whose product id matches, regardless of size.
// Removal is keyed by id alone while insertion keys by (id, size); the
// asymmetry is the observed behavior and is kept.
func (s *Store) RemoveItem(ctx context.Context, productID string) (domain.Cart, error) {
	if strings.TrimSpace(productID) == "" {
		return domain.Cart{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.lines[:0]
	for _, l := range s.lines {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}
	s.lines = kept

	s.persist(ctx)
	return s.snapshot(), nil
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.persist(ctx)
	return s.snapshot()
}

// Items returns a copy of the current lines in order.
func (s *Store) Items() []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot().Lines
}

// Cart returns a copy of the current cart.
func (s *Store) Cart() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Total sums price x quantity over all lines.
func (s *Store) Total() domain.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Cart{Lines: s.lines}.Total()
}

// persist mirrors the cart to the slot. Callers hold the lock.
func (s *Store) persist(ctx context.Context) {
	if s.slot == nil {
		return
	}

	data, err := json.Marshal(s.lines)
	if err != nil {
		s.log.Warn("cart serialization failed, keeping in-memory state", slog.Any("err", err))
		return
	}
	if err := s.slot.Write(ctx, data); err != nil {
		s.log.Warn("cart slot write failed, keeping in-memory state", slog.Any("err", err))
	}
}

func (s *Store) snapshot() domain.Cart {
	lines := make([]domain.LineItem, len(s.lines))
	copy(lines, s.lines)
	return domain.Cart{Lines: lines}
}
