package provider

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// object is the concrete representation this provider uses for a JSON
// object: an insertion-order-preserving map, per spec.md §3's data model
// ("object (string→value mapping, key uniqueness, insertion order
// preserved for iteration)").
type object = orderedmap.OrderedMap[string, any]

// array is the concrete representation this provider uses for a JSON array.
type array = []any

// DefaultProvider is the canonical Provider implementation: objects are
// backed by github.com/wk8/go-ordered-map/v2 so that key order survives a
// decode/re-encode round trip, arrays are plain []any, and numbers decode
// to json.Number so integers of arbitrary precision are preserved until a
// caller or the expression evaluator actually needs a numeric value.
type DefaultProvider struct{}

// New returns a DefaultProvider. There is no per-instance state; all
// DefaultProvider values are interchangeable and safe for concurrent use.
func New() *DefaultProvider {
	return &DefaultProvider{}
}

var _ Provider = (*DefaultProvider)(nil)

func (p *DefaultProvider) IsMap(v any) bool {
	_, ok := v.(*object)
	return ok
}

func (p *DefaultProvider) IsArray(v any) bool {
	_, ok := v.(array)
	return ok
}

func (p *DefaultProvider) IsContainer(v any) bool {
	return p.IsMap(v) || p.IsArray(v)
}

func (p *DefaultProvider) Length(v any) (n int, err error) {
	switch t := v.(type) {
	case *object:
		n = t.Len()
	case array:
		n = len(t)
	default:
		err = ErrNotContainer(v)
	}
	return n, err
}

func (p *DefaultProvider) Keys(v any) (keys []string, err error) {
	obj, ok := v.(*object)
	if !ok {
		err = ErrNotContainer(v)
		return keys, err
	}
	keys = make([]string, 0, obj.Len())
	for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys, err
}

func (p *DefaultProvider) GetProperty(v any, key string) (val any, present bool) {
	obj, ok := v.(*object)
	if !ok {
		return nil, false
	}
	return obj.Get(key)
}

func (p *DefaultProvider) SetProperty(v any, key string, val any) (err error) {
	switch t := v.(type) {
	case *object:
		t.Set(key, val)
	case array:
		i, convErr := strconv.Atoi(key)
		if convErr != nil {
			return fmt.Errorf("provider: invalid array index %q", key)
		}
		if i < 0 {
			i += len(t)
		}
		if i < 0 || i >= len(t) {
			return fmt.Errorf("provider: array index %s out of range", key)
		}
		t[i] = val
	default:
		err = ErrNotContainer(v)
	}
	return err
}

func (p *DefaultProvider) GetIndex(v any, index int) (val any, present bool) {
	arr, ok := v.(array)
	if !ok {
		return nil, false
	}
	i := index
	if i < 0 {
		i += len(arr)
	}
	if i < 0 || i >= len(arr) {
		return nil, false
	}
	return arr[i], true
}

func (p *DefaultProvider) CreateArray() any {
	return array{}
}

func (p *DefaultProvider) CreateMap() any {
	return orderedmap.New[string, any]()
}

func (p *DefaultProvider) AppendArray(arr any, val any) any {
	a, _ := arr.(array)
	return append(a, val)
}

func (p *DefaultProvider) ToSlice(v any) (out []any, err error) {
	arr, ok := v.(array)
	if !ok {
		err = ErrNotContainer(v)
		return out, err
	}
	out = make([]any, len(arr))
	copy(out, arr)
	return out, err
}

// Parse decodes raw JSON into the ordered-map/slice representation above.
// It walks the token stream itself (rather than relying on
// encoding/json's map[string]any, which does not preserve key order)
// so insertion order is preserved at every nesting level.
func (p *DefaultProvider) Parse(data []byte) (v any, err error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err = decodeValue(dec)
	return v, err
}

func decodeValue(dec *json.Decoder) (v any, err error) {
	var tok json.Token

	tok, err = dec.Token()
	if err != nil {
		return v, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			v, err = decodeObject(dec)
		case '[':
			v, err = decodeArray(dec)
		default:
			err = fmt.Errorf("provider: unexpected delimiter %q", t)
		}
	default:
		v = tok
	}
	return v, err
}

func decodeObject(dec *json.Decoder) (v any, err error) {
	var keyTok json.Token
	var val any

	om := orderedmap.New[string, any]()
	for dec.More() {
		keyTok, err = dec.Token()
		if err != nil {
			return om, err
		}
		key, ok := keyTok.(string)
		if !ok {
			err = fmt.Errorf("provider: expected object key, got %v", keyTok)
			return om, err
		}
		val, err = decodeValue(dec)
		if err != nil {
			return om, err
		}
		om.Set(key, val)
	}
	// consume closing '}'
	_, err = dec.Token()
	return om, err
}

func decodeArray(dec *json.Decoder) (v any, err error) {
	var elem any

	arr := array{}
	for dec.More() {
		elem, err = decodeValue(dec)
		if err != nil {
			return arr, err
		}
		arr = append(arr, elem)
	}
	// consume closing ']'
	_, err = dec.Token()
	return arr, err
}

// Serialize re-encodes a value produced by Parse (or CreateMap/CreateArray)
// back to JSON, preserving object key order.
func (p *DefaultProvider) Serialize(v any) (data []byte, err error) {
	var buf bytes.Buffer
	err = encodeValue(&buf, v)
	if err != nil {
		return data, err
	}
	return buf.Bytes(), err
}

func encodeValue(buf *bytes.Buffer, v any) (err error) {
	switch t := v.(type) {
	case *object:
		err = encodeObject(buf, t)
	case array:
		err = encodeArray(buf, t)
	default:
		var b []byte
		b, err = json.Marshal(t)
		if err == nil {
			buf.Write(b)
		}
	}
	return err
}

func encodeObject(buf *bytes.Buffer, obj *object) (err error) {
	buf.WriteByte('{')
	first := true
	for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
		if !first {
			buf.WriteByte(',')
		}
		first = false

		var keyBytes []byte
		keyBytes, err = json.Marshal(pair.Key)
		if err != nil {
			return err
		}
		buf.Write(keyBytes)
		buf.WriteByte(':')

		err = encodeValue(buf, pair.Value)
		if err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return err
}

func encodeArray(buf *bytes.Buffer, arr array) (err error) {
	buf.WriteByte('[')
	for i, elem := range arr {
		if i > 0 {
			buf.WriteByte(',')
		}
		err = encodeValue(buf, elem)
		if err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	return err
}

// Clone returns a deep copy of v so that GetRef-style callers can be handed
// aliases into a private copy rather than the shared source document.
func (p *DefaultProvider) Clone(v any) any {
	switch t := v.(type) {
	case *object:
		out := orderedmap.New[string, any]()
		for pair := t.Oldest(); pair != nil; pair = pair.Next() {
			out.Set(pair.Key, p.Clone(pair.Value))
		}
		return out
	case array:
		out := make(array, len(t))
		for i, elem := range t {
			out[i] = p.Clone(elem)
		}
		return out
	default:
		return v
	}
}
