// Package ops implements the cart operations on top of a storage.KV.
//
// Every mutating operation is a full load-modify-save of the single cart
// document. There is no cache between calls; the persisted document is the
// only state. Presentation code observes changes through Subscribe.
package ops

import (
	"context"
	"errors"
	"sync"

	"github.com/blububb/cart/internal/model"
	"github.com/blububb/cart/internal/storage"
	"go.uber.org/zap"
)

// Subscriber is notified after every successful save with the saved cart.
type Subscriber interface {
	CartChanged(ctx context.Context, cart *model.Cart)
}

// SubscriberFunc adapts a function to Subscriber.
type SubscriberFunc func(ctx context.Context, cart *model.Cart)

// CartChanged calls f.
func (f SubscriberFunc) CartChanged(ctx context.Context, cart *model.Cart) {
	f(ctx, cart)
}

// AddedFunc is called after a product has been added and saved.
type AddedFunc func(ctx context.Context, product model.Product)

// Store owns the cart document kept under model.CartKey.
type Store struct {
	kv     storage.KV
	key    string
	logger *zap.Logger

	// mu serializes read-modify-write cycles within this process.
	mu sync.Mutex

	subMu       sync.RWMutex
	nextSubID   int
	subscribers map[int]Subscriber
	order       []int
	added       []AddedFunc
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithKey overrides the storage key of the cart document.
func WithKey(key string) Option {
	return func(s *Store) {
		s.key = key
	}
}

// NewStore returns a Store persisting to kv.
func NewStore(kv storage.KV, opts ...Option) *Store {
	s := &Store{
		kv:          kv,
		key:         model.CartKey,
		logger:      zap.NewNop(),
		subscribers: make(map[int]Subscriber),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers sub to be called after every save, in registration
// order. The returned function removes the subscription.
func (s *Store) Subscribe(sub Subscriber) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = sub
	s.order = append(s.order, id)

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subscribers, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}

// OnAdded registers fn to run after Add saves the cart.
func (s *Store) OnAdded(fn AddedFunc) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.added = append(s.added, fn)
}

// Load returns the persisted cart. A missing, unreadable or corrupt document
// yields an empty cart; the failure is logged and never returned.
func (s *Store) Load(ctx context.Context) *model.Cart {
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("cart unreadable, treating as empty", zap.String("key", s.key), zap.Error(err))
		}
		return model.NewCart()
	}

	cart, err := model.UnmarshalCart([]byte(raw))
	if err != nil {
		s.logger.Warn("cart corrupt, treating as empty", zap.String("key", s.key), zap.Error(err))
		return model.NewCart()
	}
	return cart
}

// Save persists the full document and notifies subscribers.
// It is the only write path; every mutation goes through it.
func (s *Store) Save(ctx context.Context, cart *model.Cart) error {
	s.mu.Lock()
	err := s.persist(ctx, cart)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.notify(ctx, cart)
	return nil
}

// GetTotal returns the stored total of the cart.
func (s *Store) GetTotal(ctx context.Context) int64 {
	return s.Load(ctx).Total
}

// persist writes cart without notifying. Callers hold s.mu.
func (s *Store) persist(ctx context.Context, cart *model.Cart) error {
	data, err := model.MarshalCart(cart)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, s.key, string(data)); err != nil {
		s.logger.Error("failed to save cart", zap.String("key", s.key), zap.Error(err))
		return err
	}

	s.logger.Debug("cart saved",
		zap.Int("items", len(cart.Items)),
		zap.Int("item_count", cart.ItemCount),
		zap.Int64("total", cart.Total))
	return nil
}

// notify calls every subscriber with a private copy of cart.
func (s *Store) notify(ctx context.Context, cart *model.Cart) {
	s.subMu.RLock()
	subs := make([]Subscriber, 0, len(s.order))
	for _, id := range s.order {
		subs = append(subs, s.subscribers[id])
	}
	s.subMu.RUnlock()

	for _, sub := range subs {
		sub.CartChanged(ctx, cart.Clone())
	}
}

// mutate runs one load-modify-save cycle. fn reports whether the cart must
// be saved; when it returns false nothing is written and nobody is notified.
func (s *Store) mutate(ctx context.Context, fn func(c *model.Cart) bool) (*model.Cart, error) {
	s.mu.Lock()
	cart := s.Load(ctx)
	if !fn(cart) {
		s.mu.Unlock()
		return cart, nil
	}
	err := s.persist(ctx, cart)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	s.notify(ctx, cart)
	return cart, nil
}
