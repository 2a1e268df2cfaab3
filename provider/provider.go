// Package provider abstracts the underlying JSON value representation that
// the jsonpath engine walks. The core engine never inspects a value's
// concrete Go type directly; it calls Provider operations exclusively, so a
// caller already living in a different JSON ecosystem (gjson, jsonparser,
// a database driver's own JSON type) can plug in an adapter instead of
// paying for a round-trip through encoding/json.
package provider

import "fmt"

// Provider abstracts is-map/is-array/length/keys/get/set/parse/serialize/iterate
// over an opaque JSON value, per spec.md §6.
type Provider interface {
	// IsMap reports whether v is an object.
	IsMap(v any) bool
	// IsArray reports whether v is an array.
	IsArray(v any) bool
	// IsContainer reports whether v is a map or an array.
	IsContainer(v any) bool
	// Length returns the number of entries in a map or array.
	Length(v any) (int, error)
	// Keys returns an object's keys in insertion order.
	Keys(v any) ([]string, error)
	// GetProperty returns the value stored at key in an object, and whether
	// it was present.
	GetProperty(v any, key string) (val any, present bool)
	// SetProperty sets key to val on an object, or index (parsed from key)
	// on an array.
	SetProperty(v any, key string, val any) error
	// GetIndex returns the value stored at a (possibly negative) index in
	// an array, and whether it was in range.
	GetIndex(v any, index int) (val any, present bool)
	// CreateArray returns a new, empty array value.
	CreateArray() any
	// CreateMap returns a new, empty map value.
	CreateMap() any
	// AppendArray appends val to an array value, returning the updated array.
	AppendArray(arr any, val any) any
	// ToSlice returns an array's elements as a Go slice, in order. It
	// returns an error if v is not an array.
	ToSlice(v any) ([]any, error)
	// Parse decodes raw JSON bytes into a value in this provider's
	// representation.
	Parse(data []byte) (any, error)
	// Serialize encodes a value in this provider's representation back to
	// JSON bytes.
	Serialize(v any) ([]byte, error)
	// Clone returns a deep copy of v so that reference-returning reads can
	// be handed out safely by callers that intend to keep reading the
	// source document.
	Clone(v any) any
}

// ErrNotContainer is returned by Length/Keys/ToSlice when called on a value
// that is neither a map nor an array.
func ErrNotContainer(v any) error {
	return fmt.Errorf("provider: value of type %T is not a container", v)
}
