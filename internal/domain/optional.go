package domain

import (
	"bytes"
	"encoding/json"
)

// Optional records whether a field was supplied in a partial update.
// For nullable columns a supplied zero value (nil pointer, nil JSON) clears the column.
type Optional[T any] struct {
	Value T
	Set   bool
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{Value: value, Set: true}
}

// UnmarshalJSON is only invoked for keys present in the payload, so an explicit
// null still marks the field as set.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.Value = zero
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}
