package entity

import (
	"encoding/json"
)

// Optional distinguishes a JSON field that was omitted from one that was
// supplied, including a field supplied as an explicit null. The zero value
// means the field was absent from the payload. After unmarshalling a present
// field, Set is true and Value is nil only for an explicit null.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// UnmarshalJSON records that the field was present. encoding/json never
// calls it for omitted fields, so Set stays false for those.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}
