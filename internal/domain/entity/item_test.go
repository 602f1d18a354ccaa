package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wekeepgrowing/item-service/internal/domain/entity"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestNewItem(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	in := entity.NewItemInput{
		Name:        "Widget",
		Description: strPtr("A widget"),
		Price:       9.99,
	}

	item := entity.NewItem(1, in, now)

	assert.Equal(t, int64(1), item.ID)
	assert.Equal(t, "Widget", item.Name)
	assert.Equal(t, "A widget", *item.Description)
	assert.Equal(t, 9.99, item.Price)
	assert.Equal(t, now, item.CreatedAt)
	assert.Equal(t, item.CreatedAt, item.UpdatedAt)
}

func TestItemApply(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	newItem := func() *entity.Item {
		return entity.NewItem(3, entity.NewItemInput{
			Name:        "Widget",
			Description: strPtr("A widget"),
			Price:       9.99,
		}, created)
	}

	t.Run("only supplied fields change", func(t *testing.T) {
		item := newItem()

		item.Apply(entity.UpdateItemInput{
			Price: entity.Optional[float64]{Set: true, Value: floatPtr(12.5)},
		}, updated)

		assert.Equal(t, "Widget", item.Name)
		assert.Equal(t, "A widget", *item.Description)
		assert.Equal(t, 12.5, item.Price)
		assert.Equal(t, updated, item.UpdatedAt)
	})

	t.Run("explicit null clears the description", func(t *testing.T) {
		item := newItem()

		item.Apply(entity.UpdateItemInput{
			Description: entity.Optional[string]{Set: true, Value: nil},
		}, updated)

		assert.Nil(t, item.Description)
	})

	t.Run("id and creation time never change", func(t *testing.T) {
		item := newItem()

		item.Apply(entity.UpdateItemInput{
			Name:  entity.Optional[string]{Set: true, Value: strPtr("Gadget")},
			Price: entity.Optional[float64]{Set: true, Value: floatPtr(1.0)},
		}, updated)

		assert.Equal(t, int64(3), item.ID)
		assert.Equal(t, created, item.CreatedAt)
		assert.Equal(t, updated, item.UpdatedAt)
	})

	t.Run("empty update only refreshes the update time", func(t *testing.T) {
		item := newItem()

		item.Apply(entity.UpdateItemInput{}, updated)

		assert.Equal(t, "Widget", item.Name)
		assert.Equal(t, 9.99, item.Price)
		assert.Equal(t, updated, item.UpdatedAt)
	})
}

func TestCollectionNextID(t *testing.T) {
	now := time.Now().UTC()

	t.Run("empty collection starts at 1", func(t *testing.T) {
		assert.Equal(t, int64(1), entity.Collection{}.NextID())
	})

	t.Run("one greater than the highest id", func(t *testing.T) {
		items := entity.Collection{
			entity.NewItem(1, entity.NewItemInput{Name: "a", Price: 1}, now),
			entity.NewItem(7, entity.NewItemInput{Name: "b", Price: 1}, now),
			entity.NewItem(3, entity.NewItemInput{Name: "c", Price: 1}, now),
		}
		assert.Equal(t, int64(8), items.NextID())
	})

	t.Run("removing the highest id frees it for reuse", func(t *testing.T) {
		items := entity.Collection{
			entity.NewItem(1, entity.NewItemInput{Name: "a", Price: 1}, now),
			entity.NewItem(2, entity.NewItemInput{Name: "b", Price: 1}, now),
		}
		items, removed := items.Remove(2)
		assert.True(t, removed)
		assert.Equal(t, int64(2), items.NextID())
	})
}

func TestCollectionFind(t *testing.T) {
	now := time.Now().UTC()
	items := entity.Collection{
		entity.NewItem(1, entity.NewItemInput{Name: "a", Price: 1}, now),
		entity.NewItem(2, entity.NewItemInput{Name: "b", Price: 1}, now),
	}

	assert.Equal(t, "b", items.Find(2).Name)
	assert.Nil(t, items.Find(99))
}

func TestCollectionRemove(t *testing.T) {
	now := time.Now().UTC()
	items := entity.Collection{
		entity.NewItem(1, entity.NewItemInput{Name: "a", Price: 1}, now),
		entity.NewItem(2, entity.NewItemInput{Name: "b", Price: 1}, now),
		entity.NewItem(3, entity.NewItemInput{Name: "c", Price: 1}, now),
	}

	t.Run("keeps order of the remaining items", func(t *testing.T) {
		rest, removed := items.Remove(2)

		assert.True(t, removed)
		assert.Len(t, rest, 2)
		assert.Equal(t, int64(1), rest[0].ID)
		assert.Equal(t, int64(3), rest[1].ID)
	})

	t.Run("unknown id leaves the collection alone", func(t *testing.T) {
		items := entity.Collection{
			entity.NewItem(1, entity.NewItemInput{Name: "a", Price: 1}, now),
		}
		rest, removed := items.Remove(99)

		assert.False(t, removed)
		assert.Len(t, rest, 1)
	})
}
