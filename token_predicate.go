package jsonpath

import "github.com/mikeschinkel/jsonpath/predicate"

// arrayEvalFilter implements "[?(bool_expr)]" when bool_expr contains a
// comparator anywhere in its body (spec.md §4.1's lexical rule for
// classifying ArrayEval vs HasPath).
type arrayEvalFilter struct {
	expr string
	node predicate.Node
}

var _ TokenFilter = (*arrayEvalFilter)(nil)

func (f *arrayEvalFilter) Kind() TokenKind     { return KindArrayEval }
func (f *arrayEvalFilter) IsArrayFilter() bool { return true }

func (f *arrayEvalFilter) Apply(ec *evalCtx, value any, _ bool) (any, bool, error) {
	return evalPredicateOverArray(ec, value, f.node)
}

// hasPathFilter implements "[?(@.sub-path)]" — a bare existence test, no
// comparator present anywhere in the body.
type hasPathFilter struct {
	expr string
	node predicate.Node
}

var _ TokenFilter = (*hasPathFilter)(nil)

func (f *hasPathFilter) Kind() TokenKind     { return KindHasPath }
func (f *hasPathFilter) IsArrayFilter() bool { return true }

func (f *hasPathFilter) Apply(ec *evalCtx, value any, _ bool) (any, bool, error) {
	return evalPredicateOverArray(ec, value, f.node)
}

// evalPredicateOverArray applies node to each element of value (which must
// be an array), keeping elements for which it evaluates true. An empty
// result is still a match — per spec.md §8's invariant that a predicate's
// result size never exceeds the input array's.
func evalPredicateOverArray(ec *evalCtx, value any, node predicate.Node) (any, bool, error) {
	if !ec.provider.IsArray(value) {
		return nil, false, newPathNotFoundError("predicate filter applied to a non-array value")
	}
	elements, err := ec.provider.ToSlice(value)
	if err != nil {
		return nil, false, err
	}
	out := ec.provider.CreateArray()
	cfg := predicate.EvalConfig{Truthiness: ec.config.truthinessPredicates}
	for _, elem := range elements {
		ok, err := node.Eval(ec.resolveFor(elem), cfg)
		if err != nil {
			return nil, false, err
		}
		if ok {
			out = ec.provider.AppendArray(out, elem)
		}
	}
	return out, true, nil
}

// arrayQueryFilter implements the "[?]" placeholder: it consumes the next
// externally supplied predicate.ExternalFilter from the compiled path's
// filter queue, per spec.md §4.2's ArrayQuery variant.
type arrayQueryFilter struct{}

var _ TokenFilter = arrayQueryFilter{}

func (arrayQueryFilter) Kind() TokenKind     { return KindArrayQuery }
func (arrayQueryFilter) IsArrayFilter() bool { return true }

func (arrayQueryFilter) Apply(ec *evalCtx, value any, _ bool) (any, bool, error) {
	if !ec.provider.IsArray(value) {
		return nil, false, newPathNotFoundError("[?] filter applied to a non-array value")
	}
	if len(ec.filters) == 0 {
		return nil, false, newInvalidArgumentError("no external filter available for [?] placeholder")
	}
	filter := ec.filters[0]
	ec.filters = ec.filters[1:]

	elements, err := ec.provider.ToSlice(value)
	if err != nil {
		return nil, false, err
	}
	out := ec.provider.CreateArray()
	for _, elem := range elements {
		ok, err := filter.Accept(elem, ec.resolveFor(elem))
		if err != nil {
			return nil, false, err
		}
		if ok {
			out = ec.provider.AppendArray(out, elem)
		}
	}
	return out, true, nil
}
