package predicate

// Check is a single (operator, expected literal) constraint within a
// Criterion.
type Check struct {
	Op       Comparator
	Expected Literal
}

// Criterion is a key-path plus a list of constraints, ANDed together, per
// spec.md §3's data model: "{ key: compiled_sub_path, criteria:
// [(op, expected_literal)…], combined_with: AND }".
type Criterion struct {
	// Key is the sub-path (e.g. "@.author" or "@.price") evaluated against
	// each candidate element.
	Key    string
	Checks []Check
}

// NewCriterion builds a Criterion for key with the given checks ANDed
// together.
func NewCriterion(key string, checks ...Check) Criterion {
	return Criterion{Key: key, Checks: checks}
}

// Matches resolves Key against value once, then applies every Check to the
// resolved value, ANDing the results. A Key that fails to resolve makes the
// criterion false rather than raising — consistent with AtomNode's
// missing-path handling.
func (c Criterion) Matches(value any, resolve ResolveFunc) (bool, error) {
	resolved, found, err := resolve(c.Key)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	for _, check := range c.Checks {
		ok, err := Compare(resolved, check.Op, check.Expected)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// ExternalFilter is the contract an [?] placeholder token consumes: an
// externally supplied filter object whose Accept method is applied to each
// element of the candidate array, per spec.md §4.2's ArrayQuery.
type ExternalFilter interface {
	Accept(element any, resolve ResolveFunc) (bool, error)
}

// Filter is a conjunction of Criteria over a candidate value — spec.md
// §2's "Filter: Conjunction of criteria over a candidate value; selects
// matching elements from an iterable." It is the reference ExternalFilter
// implementation; callers of the jsonpath package are free to supply their
// own ExternalFilter instead.
type Filter struct {
	Criteria []Criterion
}

var _ ExternalFilter = Filter{}

// NewFilter builds a Filter from one or more Criteria, ANDed together.
func NewFilter(criteria ...Criterion) Filter {
	return Filter{Criteria: criteria}
}

// Accept implements ExternalFilter.
func (f Filter) Accept(element any, resolve ResolveFunc) (bool, error) {
	for _, c := range f.Criteria {
		ok, err := c.Matches(element, resolve)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
