// Package predicate implements the inline boolean-expression evaluator used
// by [?(<expr>)] tokens, plus the Criterion/Filter external-filter contract
// used by [?] placeholder tokens, per spec.md §4.3 and §6.
//
// This package has no dependency on the jsonpath package's tokenizer or
// engine: it resolves "@…" sub-paths through a caller-supplied ResolveFunc,
// which the jsonpath package implements by recursing into its own
// tokenizer/evaluator (spec.md §9: "Recursion into the tokenizer is
// acceptable; a single shared routine is preferred"). That indirection is
// what keeps the two packages from importing each other.
package predicate

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Comparator is one of the operators spec.md §6 allows in a bool_expr atom.
type Comparator string

const (
	Eq  Comparator = "=="
	Ne  Comparator = "!="
	Alt Comparator = "<>" // alternate not-equal spelling
	Lt  Comparator = "<"
	Le  Comparator = "<="
	Gt  Comparator = ">"
	Ge  Comparator = ">="
)

// LiteralKind classifies a parsed literal operand.
type LiteralKind int

const (
	LitString LiteralKind = iota
	LitNumber
	LitBool
	LitNull
)

// Literal is a parsed right-hand-side operand: a single-quoted string, a
// number, true/false, or the bareword null.
type Literal struct {
	Kind LiteralKind
	Str  string
	Num  float64
	Bool bool
}

// ParseLiteral parses a trimmed literal token per spec.md §6's literal
// grammar. String un-quoting follows the Open Question decision in
// DESIGN.md: strip exactly one leading and one trailing single quote if
// both are present.
func ParseLiteral(tok string) (lit Literal, err error) {
	tok = strings.TrimSpace(tok)

	switch {
	case len(tok) >= 2 && strings.HasPrefix(tok, "'") && strings.HasSuffix(tok, "'"):
		lit = Literal{Kind: LitString, Str: unquoteSingle(tok)}
	case tok == "true":
		lit = Literal{Kind: LitBool, Bool: true}
	case tok == "false":
		lit = Literal{Kind: LitBool, Bool: false}
	case tok == "null":
		lit = Literal{Kind: LitNull}
	default:
		var f float64
		f, err = strconv.ParseFloat(tok, 64)
		if err != nil {
			err = fmt.Errorf("predicate: invalid literal %q", tok)
			return lit, err
		}
		lit = Literal{Kind: LitNumber, Num: f}
	}
	return lit, err
}

// unquoteSingle strips exactly one leading and one trailing single quote.
// This is the Open Question decision: the legacy evaluator this spec is
// modeled on mishandled the closing-quote index in this exact spot; we
// implement the corrected behavior the spec asks for, not the bug.
func unquoteSingle(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, "'") && strings.HasSuffix(s, "'") {
		return s[1 : len(s)-1]
	}
	return s
}

// Compare applies op to actual (a value resolved from the JSON document)
// and lit (a parsed literal), per spec.md §4.3's type-aware rules.
func Compare(actual any, op Comparator, lit Literal) (result bool, err error) {
	switch op {
	case Eq:
		result, err = equalTyped(actual, lit)
	case Ne, Alt:
		var eq bool
		eq, err = equalTyped(actual, lit)
		result = !eq
	case Lt, Le, Gt, Ge:
		result = compareOrdered(actual, op, lit)
	default:
		err = fmt.Errorf("predicate: unknown comparator %q", op)
	}
	return result, err
}

// equalTyped implements the equality rules of §4.3: null only equals the
// bareword null; numbers compare numerically; strings compare by
// codepoint after un-quoting; booleans compare by value; any other
// combination of actual/literal types is false (no implicit coercion).
func equalTyped(actual any, lit Literal) (bool, error) {
	if actual == nil {
		return lit.Kind == LitNull, nil
	}
	if lit.Kind == LitNull {
		return false, nil
	}
	switch lit.Kind {
	case LitNumber:
		af, ok := toFloat64(actual)
		if !ok {
			return false, nil
		}
		return af == lit.Num, nil
	case LitString:
		as, ok := actual.(string)
		if !ok {
			return false, nil
		}
		return as == lit.Str, nil
	case LitBool:
		ab, ok := actual.(bool)
		if !ok {
			return false, nil
		}
		return ab == lit.Bool, nil
	}
	return false, nil
}

// compareOrdered implements §4.3's ordering rule: only numeric comparisons
// are supported. On a non-numeric actual/literal pair (strings, bools) it
// returns false rather than falling back to lexicographic comparison — the
// Open Question decision preserves this rather than upgrading it.
func compareOrdered(actual any, op Comparator, lit Literal) bool {
	if lit.Kind != LitNumber {
		return false
	}
	af, ok := toFloat64(actual)
	if !ok {
		return false
	}
	switch op {
	case Lt:
		return af < lit.Num
	case Le:
		return af <= lit.Num
	case Gt:
		return af > lit.Num
	case Ge:
		return af >= lit.Num
	}
	return false
}

// toFloat64 normalizes the numeric Go types a Provider may hand back
// (float64, the built-in integer kinds, json.Number) to float64 using
// cast's coercion helpers. It deliberately does NOT accept strings here —
// §4.3 forbids implicit cross-type coercion, and cast.ToFloat64E alone
// would happily parse a numeric-looking string, which would wrongly make
// "123" (a string) equal to the number 123.
func toFloat64(actual any) (float64, bool) {
	switch actual.(type) {
	case float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		json.Number:
		f, err := cast.ToFloat64E(actual)
		return f, err == nil
	default:
		return 0, false
	}
}
