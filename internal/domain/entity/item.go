package entity

import (
	"time"
)

// Item is a single stored record.
type Item struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewItem builds an item from validated input. The creation and update
// timestamps start out equal.
func NewItem(id int64, in NewItemInput, now time.Time) *Item {
	return &Item{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Apply copies the supplied fields of a partial update onto the item and
// stamps the update time. ID and creation time never change. An explicit
// null clears the description; name and price must carry values, which
// Validate enforces before Apply runs.
func (i *Item) Apply(in UpdateItemInput, now time.Time) {
	if in.Name.Set && in.Name.Value != nil {
		i.Name = *in.Name.Value
	}
	if in.Description.Set {
		i.Description = in.Description.Value
	}
	if in.Price.Set && in.Price.Value != nil {
		i.Price = *in.Price.Value
	}
	i.UpdatedAt = now
}
