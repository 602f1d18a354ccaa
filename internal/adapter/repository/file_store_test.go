package repository_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/item-service/internal/adapter/repository"
	"github.com/wekeepgrowing/item-service/internal/domain/entity"
)

func strPtr(s string) *string { return &s }

func testItems() entity.Collection {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return entity.Collection{
		entity.NewItem(1, entity.NewItemInput{Name: "Widget", Description: strPtr("A widget"), Price: 9.99}, now),
		entity.NewItem(2, entity.NewItemInput{Name: "Gadget", Price: 19.99}, now),
	}
}

func TestFileStoreLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file yields an empty collection", func(t *testing.T) {
		store := repository.NewFileStore(filepath.Join(t.TempDir(), "items.json"), zap.NewNop())

		items, err := store.Load(ctx)

		assert.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("corrupt file yields an empty collection", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "items.json")
		assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
		store := repository.NewFileStore(path, zap.NewNop())

		items, err := store.Load(ctx)

		assert.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("json null yields an empty collection", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "items.json")
		assert.NoError(t, os.WriteFile(path, []byte("null"), 0644))
		store := repository.NewFileStore(path, zap.NewNop())

		items, err := store.Load(ctx)

		assert.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})
}

func TestFileStoreSave(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip preserves items and order", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "items.json")
		store := repository.NewFileStore(path, zap.NewNop())

		assert.NoError(t, store.Save(ctx, testItems()))

		loaded, err := store.Load(ctx)
		assert.NoError(t, err)
		assert.Len(t, loaded, 2)
		assert.Equal(t, int64(1), loaded[0].ID)
		assert.Equal(t, "Widget", loaded[0].Name)
		assert.Equal(t, "A widget", *loaded[0].Description)
		assert.Equal(t, int64(2), loaded[1].ID)
		assert.Nil(t, loaded[1].Description)
		assert.True(t, loaded[0].CreatedAt.Equal(testItems()[0].CreatedAt))
	})

	t.Run("writes an indented document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "items.json")
		store := repository.NewFileStore(path, zap.NewNop())

		assert.NoError(t, store.Save(ctx, testItems()))

		data, err := os.ReadFile(path)
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "[\n  {"))
	})

	t.Run("save replaces the previous document entirely", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "items.json")
		store := repository.NewFileStore(path, zap.NewNop())

		assert.NoError(t, store.Save(ctx, testItems()))
		assert.NoError(t, store.Save(ctx, testItems()[:1]))

		loaded, err := store.Load(ctx)
		assert.NoError(t, err)
		assert.Len(t, loaded, 1)
		assert.Equal(t, "Widget", loaded[0].Name)
	})

	t.Run("nil collection is stored as an empty document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "items.json")
		store := repository.NewFileStore(path, zap.NewNop())

		assert.NoError(t, store.Save(ctx, nil))

		data, err := os.ReadFile(path)
		assert.NoError(t, err)
		assert.Equal(t, "[]", string(data))

		loaded, err := store.Load(ctx)
		assert.NoError(t, err)
		assert.Empty(t, loaded)
	})

	t.Run("unwritable directory surfaces the error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "items.json")
		store := repository.NewFileStore(path, zap.NewNop())

		assert.Error(t, store.Save(ctx, testItems()))
	})
}
