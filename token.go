package jsonpath

// TokenKind identifies which grammar production produced a Token, per
// spec.md §3's "Token filter variants (tagged union)".
type TokenKind int

const (
	KindRoot TokenKind = iota
	KindAllArrayItems
	KindWildcard
	KindScan
	KindField
	KindArrayIndex
	KindArrayEval
	KindHasPath
	KindArrayQuery
)

// String names a TokenKind for diagnostics.
func (k TokenKind) String() string {
	switch k {
	case KindRoot:
		return "Root"
	case KindAllArrayItems:
		return "AllArrayItems"
	case KindWildcard:
		return "Wildcard"
	case KindScan:
		return "Scan"
	case KindField:
		return "Field"
	case KindArrayIndex:
		return "ArrayIndex"
	case KindArrayEval:
		return "ArrayEval"
	case KindHasPath:
		return "HasPath"
	case KindArrayQuery:
		return "ArrayQuery"
	default:
		return "Unknown"
	}
}

// Token is an immutable record describing one step of a compiled path, per
// spec.md §3's data model.
type Token struct {
	// Fragment is the exact substring that produced this token, e.g. "$",
	// "store", "[*]", "[0:3]", "[?(@.price<10)]", "..".
	Fragment string
	// IsRoot is true only for the leading '$' token.
	IsRoot bool
	// IsEnd is true for the last token in the compiled path.
	IsEnd bool
	// UpstreamFragment is the accumulated path up to and including this
	// token, used in error messages.
	UpstreamFragment string
	// Filter is this token's evaluation behavior.
	Filter TokenFilter
}

// TokenFilter is the per-token-kind evaluation behavior: a tagged-union
// dispatch surface (spec.md §9 recommends "a tagged variant with a single
// dispatch function, or an interface whose variants are precomputed at
// compile time"). State parsed once at compile time (index lists, parsed
// predicate ASTs) lives inside the concrete implementation.
type TokenFilter interface {
	// Kind identifies the token's grammar production.
	Kind() TokenKind
	// IsArrayFilter reports whether a successful Apply switches evaluation
	// into array (element-wise) context for all downstream tokens. Once
	// true for any token in a path, it stays true (spec.md §4.2: "sticky").
	IsArrayFilter() bool
	// Apply evaluates this token's effect on the current working value.
	// matched is false when the token did not match (e.g. a missing key or
	// an out-of-range single index); the caller decides whether that is an
	// error, based on whether this is the terminal token. A token returns a
	// PathNotFound error itself when the strict missing-property option is
	// set, or when it is applied to a value of the wrong shape (e.g. an
	// array index on a non-array).
	Apply(ec *evalCtx, value any, inArrayCtx bool) (result any, matched bool, err error)
}
