package jsonpath

// wildcardFilter implements the unbracketed '*' segment. AllArrayItems
// ("[*]") has identical fan-out behavior — per spec.md §4.1, "the
// distinction exists only to mark array-context entry" — so both share
// fanOut below and differ only in Kind().
type wildcardFilter struct{}

var _ TokenFilter = wildcardFilter{}

func (wildcardFilter) Kind() TokenKind     { return KindWildcard }
func (wildcardFilter) IsArrayFilter() bool { return true }

func (wildcardFilter) Apply(ec *evalCtx, value any, _ bool) (any, bool, error) {
	return fanOut(ec, value)
}

// allArrayItemsFilter implements "[*]".
type allArrayItemsFilter struct{}

var _ TokenFilter = allArrayItemsFilter{}

func (allArrayItemsFilter) Kind() TokenKind     { return KindAllArrayItems }
func (allArrayItemsFilter) IsArrayFilter() bool { return true }

func (allArrayItemsFilter) Apply(ec *evalCtx, value any, _ bool) (any, bool, error) {
	return fanOut(ec, value)
}

// fanOut yields value itself when it is already an array, or an array of
// its values (in insertion order) when it is a map. A scalar does not
// match.
func fanOut(ec *evalCtx, value any) (any, bool, error) {
	if ec.provider.IsArray(value) {
		return value, true, nil
	}
	if ec.provider.IsMap(value) {
		keys, err := ec.provider.Keys(value)
		if err != nil {
			return nil, false, err
		}
		out := ec.provider.CreateArray()
		for _, k := range keys {
			v, _ := ec.provider.GetProperty(value, k)
			out = ec.provider.AppendArray(out, v)
		}
		return out, true, nil
	}
	return nil, false, nil
}
