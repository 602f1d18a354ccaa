package usecase

import (
	"fmt"

	"github.com/wekeepgrowing/item-service/pkg/errors"
)

// errItemNotFound builds the not-found failure for an item ID. The message
// names the ID so clients can tell which lookup missed.
func errItemNotFound(id int64) error {
	return errors.NewAppError(errors.ErrNotFound, fmt.Sprintf("item with ID %d not found", id), nil)
}
