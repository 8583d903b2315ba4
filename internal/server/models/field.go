package models

import "github.com/goccy/go-json"

// Field is a request value that remembers whether the key was present in the
// JSON body and whether it was null. Absent fields are left untouched by
// updates; null fields are written as SQL NULL.
type Field[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Of returns a present, non-null Field.
func Of[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// Null returns a present Field holding JSON null.
func Null[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}

func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.Set = true
	if string(b) == "null" {
		f.Null = true
		return nil
	}
	return json.Unmarshal(b, &f.Value)
}

// Arg returns the value to bind as a SQL argument: nil for null.
func (f Field[T]) Arg() any {
	if f.Null {
		return nil
	}
	return f.Value
}

// Values maps column names to the arguments bound for them.
type Values map[string]any

// put records f under col when the key was present in the request.
func put[T any](v Values, col string, f Field[T]) {
	if f.Set {
		v[col] = f.Arg()
	}
}
