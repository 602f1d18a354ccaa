package entity

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/wekeepgrowing/item-service/pkg/errors"
)

var validate = validator.New()

// NewItemInput carries the fields for creating an item.
type NewItemInput struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Price       float64 `json:"price" validate:"required,gt=0"`
}

// Validate checks the creation constraints.
func (in NewItemInput) Validate() error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return invalidField(verrs[0].Field())
	}
	return errors.NewAppError(errors.ErrInvalidEntity, err.Error(), err)
}

// UpdateItemInput carries a partial update. Every field is optional; fields
// absent from the payload are left untouched on the item.
type UpdateItemInput struct {
	Name        Optional[string]  `json:"name"`
	Description Optional[string]  `json:"description"`
	Price       Optional[float64] `json:"price"`
}

// Validate checks every supplied field against the creation constraints.
// Only the description may be set to an explicit null.
func (in UpdateItemInput) Validate() error {
	if in.Name.Set {
		if in.Name.Value == nil {
			return nullField("name")
		}
		if err := validate.Var(*in.Name.Value, "required,min=1,max=100"); err != nil {
			return invalidField("Name")
		}
	}
	if in.Description.Set && in.Description.Value != nil {
		if err := validate.Var(*in.Description.Value, "max=500"); err != nil {
			return invalidField("Description")
		}
	}
	if in.Price.Set {
		if in.Price.Value == nil {
			return nullField("price")
		}
		if err := validate.Var(*in.Price.Value, "gt=0"); err != nil {
			return invalidField("Price")
		}
	}
	return nil
}

func invalidField(field string) error {
	var message string
	switch field {
	case "Name":
		message = "name must be between 1 and 100 characters"
	case "Description":
		message = "description must be at most 500 characters"
	case "Price":
		message = "price must be greater than 0"
	default:
		message = fmt.Sprintf("%s is invalid", field)
	}
	return errors.NewAppError(errors.ErrInvalidEntity, message, nil)
}

func nullField(field string) error {
	return errors.NewAppError(errors.ErrInvalidEntity, fmt.Sprintf("%s must not be null", field), nil)
}
