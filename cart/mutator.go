// Package cart gates quantity-affecting cart mutations behind a live stock
// check. Persisted cart state can be stale relative to server inventory, so
// every add or quantity change re-validates against the catalog first.
package cart

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"go-storefront/session"
)

// ErrOutOfStock means the requested quantity exceeds current inventory.
// The cart is left unchanged.
var ErrOutOfStock = errors.New("Sorry. Product is out of stock")

// ErrSuperseded means a newer mutation for the session started while this
// one's stock check was in flight; the stale result was discarded.
var ErrSuperseded = errors.New("cart mutation superseded by a newer one")

// StockChecker is the catalog read the mutator needs
type StockChecker interface {
	GetStock(ctx context.Context, key string) (int, error)
}

// Mutator applies stock-checked cart mutations to a session store
type Mutator struct {
	store *session.Store
	stock StockChecker
	log   *zap.Logger
	gen   uint64
}

func NewMutator(store *session.Store, stock StockChecker, log *zap.Logger) *Mutator {
	return &Mutator{store: store, stock: stock, log: log}
}

// AddOrUpdate sets the cart quantity for item to desired, after a fresh
// stock round trip. On success the item's stock snapshot is refreshed and
// the upsert is dispatched; on ErrOutOfStock or a lookup failure the cart
// is untouched. A response that loses the race to a newer AddOrUpdate is
// discarded rather than applied.
func (m *Mutator) AddOrUpdate(ctx context.Context, item session.CartItem, desired int) error {
	if item.Key == "" {
		return fmt.Errorf("cart item has no key")
	}
	if desired < 1 {
		return fmt.Errorf("quantity must be at least 1, got %d", desired)
	}

	m.gen++
	gen := m.gen

	stock, err := m.stock.GetStock(ctx, item.Key)
	if err != nil {
		return err
	}
	if m.gen != gen {
		m.log.Debug("dropping stale stock response",
			zap.String("key", item.Key), zap.Uint64("generation", gen))
		return ErrSuperseded
	}
	if stock < desired {
		return ErrOutOfStock
	}

	item.Quantity = desired
	item.CountInStock = stock
	m.store.Dispatch(session.AddItem{Item: item})
	return nil
}

// AddOne bumps the item's cart quantity by one, starting from whatever the
// cart currently holds for its key.
func (m *Mutator) AddOne(ctx context.Context, item session.CartItem) error {
	desired := 1
	for _, existing := range m.store.State().Cart.Items {
		if existing.Key == item.Key {
			desired = existing.Quantity + 1
			break
		}
	}
	return m.AddOrUpdate(ctx, item, desired)
}

// Remove drops the item from the cart. No stock check; removal can never
// oversell.
func (m *Mutator) Remove(key string) {
	m.store.Dispatch(session.RemoveItem{Key: key})
}
