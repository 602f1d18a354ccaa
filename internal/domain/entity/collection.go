package entity

// Collection is the ordered set of items held by one backing file. Order is
// preserved across load and save.
type Collection []*Item

// NextID returns the identifier for the next item: one greater than the
// highest existing ID, or 1 when the collection is empty. Deleting the
// highest item frees its ID for reuse.
func (c Collection) NextID() int64 {
	var max int64
	for _, item := range c {
		if item.ID > max {
			max = item.ID
		}
	}
	return max + 1
}

// Find returns the item with the given ID, or nil when no item has it.
func (c Collection) Find(id int64) *Item {
	for _, item := range c {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// Remove deletes the item with the given ID, reporting whether it was
// present. The remaining items keep their order.
func (c Collection) Remove(id int64) (Collection, bool) {
	for idx, item := range c {
		if item.ID == id {
			return append(c[:idx], c[idx+1:]...), true
		}
	}
	return c, false
}
