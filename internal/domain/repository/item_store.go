package repository

import (
	"context"

	"github.com/wekeepgrowing/item-service/internal/domain/entity"
)

// ItemStore is the persistence contract for the item collection. Every call
// covers the whole collection: Load is a full read, Save a full overwrite
// of the backing document.
type ItemStore interface {
	// Load returns every stored item. A missing or unreadable backing
	// document yields an empty collection rather than an error.
	Load(ctx context.Context) (entity.Collection, error)

	// Save replaces the backing document with the given collection.
	Save(ctx context.Context, items entity.Collection) error
}
