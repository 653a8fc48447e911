package delivery_test

import (
	"context"
	"slices"
	"sync"

	"service-checkout-delivery/internal/apperr"
	"service-checkout-delivery/internal/domain"
	"service-checkout-delivery/internal/ports/deliverytx"
)

type optionKey struct {
	id     string
	source domain.DeliverySource
	valid  bool
}

func keyOf(o domain.DeliveryOption) optionKey {
	return optionKey{id: o.ID, source: o.Source, valid: o.Valid}
}

// memStore is an in-memory checkout store with per-checkout row locks.
type memStore struct {
	mu        sync.Mutex
	checkouts map[string]domain.Checkout
	lines     map[string][]domain.CheckoutLine
	options   map[string][]domain.DeliveryOption
	rowLocks  map[string]*sync.Mutex

	updates    [][]string
	failUpsert error
}

func newMemStore() *memStore {
	return &memStore{
		checkouts: map[string]domain.Checkout{},
		lines:     map[string][]domain.CheckoutLine{},
		options:   map[string][]domain.DeliveryOption{},
		rowLocks:  map[string]*sync.Mutex{},
	}
}

func (s *memStore) put(c domain.Checkout, lines []domain.CheckoutLine, opts ...domain.DeliveryOption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkouts[c.ID] = c.Clone()
	s.lines[c.ID] = slices.Clone(lines)
	s.options[c.ID] = slices.Clone(opts)
}

func (s *memStore) checkout(id string) domain.Checkout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkouts[id].Clone()
}

func (s *memStore) storedOptions(id string) []domain.DeliveryOption {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.options[id])
}

func (s *memStore) updateCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.updates)
}

func (s *memStore) rowLock(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.rowLocks[id]
	if !ok {
		l = &sync.Mutex{}
		s.rowLocks[id] = l
	}
	return l
}

func (s *memStore) GetCheckout(_ context.Context, id string) (*domain.Checkout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.checkouts[id]
	if !ok {
		return nil, nil
	}
	out := c.Clone()
	return &out, nil
}

func (s *memStore) ListLines(_ context.Context, id string) ([]domain.CheckoutLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.lines[id]), nil
}

func (s *memStore) ListDeliveryOptions(_ context.Context, id string) ([]domain.DeliveryOption, error) {
	return s.storedOptions(id), nil
}

func (s *memStore) WithTx(ctx context.Context, fn func(tx deliverytx.Repository) error) error {
	tx := &memTx{
		s:         s,
		checkouts: map[string]domain.Checkout{},
		options:   map[string][]domain.DeliveryOption{},
	}
	defer tx.release()

	if err := fn(tx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, c := range tx.checkouts {
		s.checkouts[id] = c
	}
	for id, opts := range tx.options {
		s.options[id] = opts
	}
	s.updates = append(s.updates, tx.updates...)
	return nil
}

type memTx struct {
	s         *memStore
	locked    []*sync.Mutex
	checkouts map[string]domain.Checkout
	options   map[string][]domain.DeliveryOption
	updates   [][]string
}

func (t *memTx) release() {
	for _, l := range t.locked {
		l.Unlock()
	}
}

func (t *memTx) LockCheckoutForUpdate(ctx context.Context, id string) (*domain.Checkout, error) {
	l := t.s.rowLock(id)
	l.Lock()
	t.locked = append(t.locked, l)

	c, err := t.s.GetCheckout(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.ErrNotFound
	}
	return c, nil
}

func (t *memTx) ListLines(ctx context.Context, id string) ([]domain.CheckoutLine, error) {
	return t.s.ListLines(ctx, id)
}

func (t *memTx) ListDeliveryOptions(_ context.Context, id string) ([]domain.DeliveryOption, error) {
	if opts, ok := t.options[id]; ok {
		return slices.Clone(opts), nil
	}
	return t.s.storedOptions(id), nil
}

func (t *memTx) UpsertDeliveryOptions(ctx context.Context, id string, opts []domain.DeliveryOption) error {
	if t.s.failUpsert != nil {
		return t.s.failUpsert
	}
	current, _ := t.ListDeliveryOptions(ctx, id)
	for _, o := range opts {
		i := slices.IndexFunc(current, func(c domain.DeliveryOption) bool { return keyOf(c) == keyOf(o) })
		if i >= 0 {
			current[i] = o
		} else {
			current = append(current, o)
		}
	}
	t.options[id] = current
	return nil
}

func (t *memTx) DeleteDeliveryOptionsExcept(ctx context.Context, id string, keep []domain.DeliveryOption) error {
	keys := make(map[optionKey]struct{}, len(keep))
	for _, o := range keep {
		keys[keyOf(o)] = struct{}{}
	}
	current, _ := t.ListDeliveryOptions(ctx, id)
	out := current[:0]
	for _, o := range current {
		if _, ok := keys[keyOf(o)]; ok {
			out = append(out, o)
		}
	}
	t.options[id] = out
	return nil
}

func (t *memTx) UpdateCheckoutFields(_ context.Context, c *domain.Checkout, fields []string) error {
	t.checkouts[c.ID] = c.Clone()
	t.updates = append(t.updates, slices.Clone(fields))
	return nil
}

var (
	_ deliverytx.Runner     = (*memStore)(nil)
	_ deliverytx.Repository = (*memTx)(nil)
)
