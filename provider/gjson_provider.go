package provider

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"
)

// GJSONProvider is a read-only Provider backed by github.com/tidwall/gjson.
// It parses lazily (gjson defers most work until a sub-value is actually
// read) and suits callers who only ever read, never build or mutate, JSON
// values (the CLI selects it with -gjson).
//
// SetProperty and CreateMap are unsupported (SetProperty returns
// ErrReadOnly; CreateMap returns nil, since there is no way to fill it in
// without SetProperty): gjson.Result has no mutation API, and bolting one
// on would defeat the point of using it (avoiding a full unmarshal).
// CreateArray/AppendArray are
// supported, backed by a plain []any, since token filters that fan out
// (wildcard, scan, slices, index lists, predicates) need a real accumulator
// to collect matched elements into — callers that need multi-key field
// access (which also needs CreateMap) should use this provider only for
// IsPathDefinite() paths, which never build a map.
type GJSONProvider struct{}

// NewGJSON returns a GJSONProvider.
func NewGJSON() *GJSONProvider {
	return &GJSONProvider{}
}

var _ Provider = (*GJSONProvider)(nil)

// ErrReadOnly is returned by GJSONProvider's mutating operations.
var ErrReadOnly = errors.New("provider: gjson provider is read-only")

// gjsonArray is the accumulator CreateArray/AppendArray build up, used to
// hold the results of a fan-out (wildcard, scan, slice, index list, or
// predicate) over gjson.Result elements.
type gjsonArray []any

func (p *GJSONProvider) asResult(v any) (gjson.Result, bool) {
	res, ok := v.(gjson.Result)
	return res, ok
}

func (p *GJSONProvider) IsMap(v any) bool {
	res, ok := p.asResult(v)
	return ok && res.IsObject()
}

func (p *GJSONProvider) IsArray(v any) bool {
	if _, ok := v.(gjsonArray); ok {
		return true
	}
	res, ok := p.asResult(v)
	return ok && res.IsArray()
}

func (p *GJSONProvider) IsContainer(v any) bool {
	return p.IsMap(v) || p.IsArray(v)
}

func (p *GJSONProvider) Length(v any) (n int, err error) {
	if arr, ok := v.(gjsonArray); ok {
		return len(arr), nil
	}
	res, ok := p.asResult(v)
	switch {
	case !ok:
		err = ErrNotContainer(v)
	case res.IsArray():
		n = len(res.Array())
	case res.IsObject():
		n = len(res.Map())
	default:
		err = ErrNotContainer(v)
	}
	return n, err
}

func (p *GJSONProvider) Keys(v any) (keys []string, err error) {
	res, ok := p.asResult(v)
	if !ok || !res.IsObject() {
		return keys, ErrNotContainer(v)
	}
	res.ForEach(func(k, _ gjson.Result) bool {
		keys = append(keys, k.String())
		return true
	})
	return keys, err
}

func (p *GJSONProvider) GetProperty(v any, key string) (val any, present bool) {
	res, ok := p.asResult(v)
	if !ok || !res.IsObject() {
		return nil, false
	}
	res.ForEach(func(k, value gjson.Result) bool {
		if k.String() == key {
			val = value
			present = true
			return false
		}
		return true
	})
	return val, present
}

func (p *GJSONProvider) SetProperty(any, string, any) error {
	return ErrReadOnly
}

func (p *GJSONProvider) GetIndex(v any, index int) (val any, present bool) {
	if arr, ok := v.(gjsonArray); ok {
		i := index
		if i < 0 {
			i += len(arr)
		}
		if i < 0 || i >= len(arr) {
			return nil, false
		}
		return arr[i], true
	}
	res, ok := p.asResult(v)
	if !ok || !res.IsArray() {
		return nil, false
	}
	arr := res.Array()
	i := index
	if i < 0 {
		i += len(arr)
	}
	if i < 0 || i >= len(arr) {
		return nil, false
	}
	return arr[i], true
}

// CreateArray returns an empty accumulator for fan-out results. CreateMap
// has no equivalent: building an object incrementally would need
// SetProperty, which this read-only provider does not support.
func (p *GJSONProvider) CreateArray() any { return gjsonArray{} }
func (p *GJSONProvider) CreateMap() any   { return nil }

// AppendArray appends val to arr, which must be a value CreateArray
// returned. Appending to anything else is a caller bug, not a runtime
// condition to report, so it panics via the type assertion.
func (p *GJSONProvider) AppendArray(arr, val any) any {
	return append(arr.(gjsonArray), val)
}

func (p *GJSONProvider) ToSlice(v any) (out []any, err error) {
	if arr, ok := v.(gjsonArray); ok {
		out = make([]any, len(arr))
		copy(out, arr)
		return out, nil
	}
	res, ok := p.asResult(v)
	if !ok || !res.IsArray() {
		return out, ErrNotContainer(v)
	}
	arr := res.Array()
	out = make([]any, len(arr))
	for i, e := range arr {
		out[i] = e
	}
	return out, err
}

// Parse validates and parses raw JSON into a gjson.Result via gjson's own
// (lazy) parser.
func (p *GJSONProvider) Parse(data []byte) (v any, err error) {
	if !gjson.ValidBytes(data) {
		err = errors.New("provider: invalid JSON")
		return v, err
	}
	return gjson.ParseBytes(data), err
}

// Serialize returns the raw JSON text gjson retained for this node, or, for
// a fan-out accumulator, a JSON array built by serializing each element in
// turn.
func (p *GJSONProvider) Serialize(v any) (data []byte, err error) {
	if arr, ok := v.(gjsonArray); ok {
		parts := make([]string, len(arr))
		for i, e := range arr {
			var part []byte
			part, err = p.Serialize(e)
			if err != nil {
				return data, err
			}
			parts[i] = string(part)
		}
		return []byte("[" + strings.Join(parts, ",") + "]"), nil
	}
	res, ok := p.asResult(v)
	if !ok {
		return data, errors.New("provider: value is not a gjson.Result")
	}
	return []byte(res.Raw), err
}

// Clone is a no-op: gjson.Result is an immutable value type, so handing out
// the same Result carries no aliasing risk the way a pointer into a mutable
// tree would.
func (p *GJSONProvider) Clone(v any) any {
	return v
}
