package jsonpath

// rootFilter implements the leading '$' (or '@') token: a passthrough that
// never changes the working value and never enters array context.
type rootFilter struct{}

var _ TokenFilter = rootFilter{}

func (rootFilter) Kind() TokenKind     { return KindRoot }
func (rootFilter) IsArrayFilter() bool { return false }

func (rootFilter) Apply(_ *evalCtx, value any, _ bool) (any, bool, error) {
	return value, true, nil
}
