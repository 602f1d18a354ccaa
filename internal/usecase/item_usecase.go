package usecase

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/wekeepgrowing/item-service/internal/domain/entity"
	"github.com/wekeepgrowing/item-service/internal/domain/repository"
	"github.com/wekeepgrowing/item-service/pkg/errors"
)

// ItemUsecase runs every item operation as one full load-mutate-save cycle
// over the backing store. A single mutex serializes the cycles, so
// concurrent requests cannot interleave between a load and its save. That
// only holds within one process; the file itself is not locked.
type ItemUsecase struct {
	store  repository.ItemStore
	logger *zap.Logger
	mu     sync.Mutex
}

// NewItemUsecase creates an ItemUsecase on top of the given store.
func NewItemUsecase(store repository.ItemStore, logger *zap.Logger) *ItemUsecase {
	return &ItemUsecase{
		store:  store,
		logger: logger,
	}
}

// Create validates the input, assigns the next free ID and persists the new
// item. Validation failures never reach the store.
func (u *ItemUsecase) Create(ctx context.Context, in entity.NewItemInput) (*entity.Item, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	items, err := u.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load items")
	}

	item := entity.NewItem(items.NextID(), in, time.Now().UTC())
	items = append(items, item)

	if err := u.store.Save(ctx, items); err != nil {
		return nil, errors.Wrap(err, "failed to save items")
	}

	u.logger.Info("item created", zap.Int64("item_id", item.ID))
	return item, nil
}

// List returns every stored item in insertion order.
func (u *ItemUsecase) List(ctx context.Context) (entity.Collection, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	items, err := u.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load items")
	}
	return items, nil
}

// Get returns the item with the given ID.
func (u *ItemUsecase) Get(ctx context.Context, id int64) (*entity.Item, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	items, err := u.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load items")
	}

	item := items.Find(id)
	if item == nil {
		return nil, errItemNotFound(id)
	}
	return item, nil
}

// Update applies a validated partial update to the item with the given ID
// and persists the collection. A missed lookup leaves the store untouched.
func (u *ItemUsecase) Update(ctx context.Context, id int64, in entity.UpdateItemInput) (*entity.Item, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	items, err := u.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load items")
	}

	item := items.Find(id)
	if item == nil {
		return nil, errItemNotFound(id)
	}

	item.Apply(in, time.Now().UTC())

	if err := u.store.Save(ctx, items); err != nil {
		return nil, errors.Wrap(err, "failed to save items")
	}

	u.logger.Info("item updated", zap.Int64("item_id", id))
	return item, nil
}

// Delete removes the item with the given ID and persists the remainder.
// A missed lookup leaves the store untouched.
func (u *ItemUsecase) Delete(ctx context.Context, id int64) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	items, err := u.store.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load items")
	}

	rest, removed := items.Remove(id)
	if !removed {
		return errItemNotFound(id)
	}

	if err := u.store.Save(ctx, rest); err != nil {
		return errors.Wrap(err, "failed to save items")
	}

	u.logger.Info("item deleted", zap.Int64("item_id", id))
	return nil
}

// DeleteAll replaces the collection with an empty one. It succeeds no
// matter what the store held, so nothing is loaded first.
func (u *ItemUsecase) DeleteAll(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.store.Save(ctx, entity.Collection{}); err != nil {
		return errors.Wrap(err, "failed to save items")
	}

	u.logger.Info("all items deleted")
	return nil
}
