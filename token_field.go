package jsonpath

import "github.com/mikeschinkel/jsonpath/provider"

// fieldFilter implements ".name", "['name']", and the multi-key
// "['a','b']" form, per spec.md §4.2's Field variant.
type fieldFilter struct {
	keys []string
}

func newFieldFilter(keys []string) *fieldFilter {
	return &fieldFilter{keys: keys}
}

var _ TokenFilter = (*fieldFilter)(nil)

func (f *fieldFilter) Kind() TokenKind     { return KindField }
func (f *fieldFilter) IsArrayFilter() bool { return false }

func (f *fieldFilter) Apply(ec *evalCtx, value any, inArrayCtx bool) (any, bool, error) {
	if inArrayCtx && ec.provider.IsArray(value) {
		return f.applyFanned(ec, value)
	}
	if len(f.keys) > 1 {
		return f.applyMulti(ec, value)
	}
	return f.applySingle(ec, value, f.keys[0])
}

// applyFanned applies this field to each element of an already-fanned-out
// array, skipping elements that lack the key (unless the strict option
// forbids it), per spec.md §4.2: "in an array context, Field maps over
// each element, skipping elements lacking k unless the option forbids it."
func (f *fieldFilter) applyFanned(ec *evalCtx, value any) (any, bool, error) {
	elements, err := ec.provider.ToSlice(value)
	if err != nil {
		return nil, false, err
	}
	out := ec.provider.CreateArray()
	for _, elem := range elements {
		if len(f.keys) > 1 {
			out = ec.provider.AppendArray(out, buildMultiKeyObject(ec.provider, elem, f.keys))
			continue
		}
		v, present := ec.provider.GetProperty(elem, f.keys[0])
		if !present {
			if ec.config.throwOnMissingProperty {
				return nil, false, newPathNotFoundError(f.keys[0])
			}
			continue
		}
		out = ec.provider.AppendArray(out, v)
	}
	return out, true, nil
}

func (f *fieldFilter) applySingle(ec *evalCtx, value any, key string) (any, bool, error) {
	if !ec.provider.IsMap(value) {
		if ec.config.throwOnMissingProperty {
			return nil, false, newPathNotFoundError(key)
		}
		return nil, false, nil
	}
	v, present := ec.provider.GetProperty(value, key)
	if !present {
		if ec.config.throwOnMissingProperty {
			return nil, false, newPathNotFoundError(key)
		}
		return nil, false, nil
	}
	return v, true, nil
}

func (f *fieldFilter) applyMulti(ec *evalCtx, value any) (any, bool, error) {
	if !ec.provider.IsMap(value) {
		if ec.config.throwOnMissingProperty {
			return nil, false, newPathNotFoundError("multi-key access")
		}
		return nil, false, nil
	}
	return buildMultiKeyObject(ec.provider, value, f.keys), true, nil
}

// buildMultiKeyObject returns a new map containing the subset of keys
// present on value, preserving the order keys were requested in.
func buildMultiKeyObject(p provider.Provider, value any, keys []string) any {
	obj := p.CreateMap()
	if !p.IsMap(value) {
		return obj
	}
	for _, k := range keys {
		if v, present := p.GetProperty(value, k); present {
			_ = p.SetProperty(obj, k, v)
		}
	}
	return obj
}
