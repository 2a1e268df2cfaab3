package jsonpath

// scanFilter implements ".." recursive descent: a pre-order, depth-first
// walk that collects every sub-value reachable from value, including value
// itself, per spec.md §4.2. Object children are visited in insertion
// order; array children in index order.
type scanFilter struct{}

var _ TokenFilter = scanFilter{}

func (scanFilter) Kind() TokenKind     { return KindScan }
func (scanFilter) IsArrayFilter() bool { return true }

func (scanFilter) Apply(ec *evalCtx, value any, _ bool) (any, bool, error) {
	var out []any
	if err := scanWalk(ec, value, 0, &out); err != nil {
		return nil, false, err
	}
	result := ec.provider.CreateArray()
	for _, v := range out {
		result = ec.provider.AppendArray(result, v)
	}
	return result, true, nil
}

func scanWalk(ec *evalCtx, value any, depth int, out *[]any) error {
	if ec.config.maxScanDepth > 0 && depth > ec.config.maxScanDepth {
		return newUnsupportedError("recursive descent exceeded max scan depth")
	}
	*out = append(*out, value)

	switch {
	case ec.provider.IsMap(value):
		keys, err := ec.provider.Keys(value)
		if err != nil {
			return err
		}
		for _, k := range keys {
			child, _ := ec.provider.GetProperty(value, k)
			if err := scanWalk(ec, child, depth+1, out); err != nil {
				return err
			}
		}
	case ec.provider.IsArray(value):
		elements, err := ec.provider.ToSlice(value)
		if err != nil {
			return err
		}
		for _, elem := range elements {
			if err := scanWalk(ec, elem, depth+1, out); err != nil {
				return err
			}
		}
	}
	return nil
}
