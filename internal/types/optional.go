package types

import (
	"bytes"
	"encoding/json"
)

// Optional is a payload field that remembers whether it was sent. A field
// sent as null has Set true and a nil Value.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some returns a present Optional holding v
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns a present Optional holding null
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
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

// IsNull reports whether the field was sent as null
func (o Optional[T]) IsNull() bool {
	return o.Set && o.Value == nil
}

// Get returns the held value, or nil for an absent or null field
func (o Optional[T]) Get() interface{} {
	if o.Value == nil {
		return nil
	}
	return *o.Value
}

// setChange records o under column when it was sent. Null becomes a nil
// entry so the column is cleared.
func setChange[T any](changes map[string]interface{}, column string, o Optional[T]) {
	if o.Set {
		changes[column] = o.Get()
	}
}
