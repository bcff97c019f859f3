package model

import (
	"bytes"
	"encoding/json"
)

// Optional distinguishes the three states a JSON field can arrive in:
// key absent (Set=false), explicit null (Set=true, Valid=false), and a
// value (Set=true, Valid=true). Update paths leave absent fields
// untouched and clear nullable columns on explicit null.
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// Some wraps a present value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Valid: true, Value: v}
}

// Null is a field sent as explicit null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Valid = false
		var zero T
		o.Value = zero
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Ptr returns the value as a pointer, nil when absent or null.
func (o Optional[T]) Ptr() *T {
	if !o.Set || !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}
