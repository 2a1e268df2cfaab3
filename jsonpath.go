// Package jsonpath evaluates JSONPath-style expressions against
// provider-abstracted JSON values: parsed documents, gjson results, or any
// other value a provider.Provider implementation knows how to walk.
package jsonpath

import (
	"fmt"
	"strings"

	"github.com/mikeschinkel/jsonpath/predicate"
)

// CompiledPath is a tokenized path ready to be evaluated against any number
// of values. Compiling once and reading many times amortizes tokenization
// and predicate parsing, per spec.md §9's "Build at compile time, not at
// match time."
type CompiledPath struct {
	raw     string
	tokens  []Token
	filters []predicate.ExternalFilter
}

// Compile tokenizes path and binds filters, one per "[?]" placeholder
// token in left-to-right order. Compile fails if the count of filters does
// not match the count of "[?]" placeholders in path.
func Compile(path string, filters ...predicate.ExternalFilter) (*CompiledPath, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, newInvalidArgumentError("path must not be empty")
	}
	tokens, err := tokenize(trimmed)
	if err != nil {
		return nil, err
	}

	want := 0
	for _, tok := range tokens {
		if tok.Filter.Kind() == KindArrayQuery {
			want++
		}
	}
	if want != len(filters) {
		return nil, newInvalidPathError(
			fmt.Sprintf("path has %d [?] placeholder(s) but %d external filter(s) were supplied", want, len(filters)),
			trimmed,
		)
	}

	return &CompiledPath{raw: trimmed, tokens: tokens, filters: filters}, nil
}

// MustCompile is like Compile but panics on error — intended for
// package-level path variables initialized from literal strings.
func MustCompile(path string, filters ...predicate.ExternalFilter) *CompiledPath {
	cp, err := Compile(path, filters...)
	if err != nil {
		panic(err)
	}
	return cp
}

// String returns the original path text the CompiledPath was built from.
func (cp *CompiledPath) String() string {
	return cp.raw
}

// Read evaluates the path against value, returning nil (with no error)
// when the final token does not match and no stricter option was
// configured to make that an error. A miss at any earlier token is a
// PathNotFound error.
func (cp *CompiledPath) Read(value any, opts ...ReadOption) (any, error) {
	cfg := NewConfig(opts...)
	result, _, err := cp.readInternal(value, cfg)
	return result, err
}

// Exists reports whether the path matches value. Unlike Read, it tells a
// match on a literal null (true) apart from a non-match (false). A
// PathNotFound error is not propagated; it simply makes Exists
// return false. Any other error (e.g. InvalidArgument for a non-container
// root) is propagated.
func (cp *CompiledPath) Exists(value any, opts ...ReadOption) (bool, error) {
	cfg := NewConfig(opts...)
	_, found, err := cp.readInternal(value, cfg)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return found, nil
}

func (cp *CompiledPath) readInternal(value any, cfg *Config) (result any, found bool, err error) {
	if cp.raw == "$" {
		return value, true, nil
	}
	if !cfg.provider.IsContainer(value) {
		return nil, false, newInvalidArgumentError("root value must be a map or array")
	}

	queue := make([]predicate.ExternalFilter, len(cp.filters))
	copy(queue, cp.filters)
	ec := &evalCtx{provider: cfg.provider, config: cfg, filters: queue}

	return runTokens(ec, cp.tokens, value, false)
}

// Ref is a mutation handle returned by GetRef: the container that directly
// holds the matched value, plus which key or index of that container it
// lives at. Callers use the provider's SetProperty (for Key) or re-slice
// semantics (for Index) to write through it.
type Ref struct {
	Parent  any
	Key     string
	Index   int
	IsIndex bool
}

// GetRef resolves path against value and returns a Ref identifying the
// direct parent and key/index of the matched location, instead of the
// matched value itself — for callers that want to overwrite or delete in
// place. GetRef requires the path to be "definite" (see IsPathDefinite):
// no wildcard, scan, slice, multi-key, or predicate token may appear,
// since those can match zero, or more than one, location.
func (cp *CompiledPath) GetRef(value any, opts ...ReadOption) (Ref, bool, error) {
	if !cp.IsPathDefinite() {
		return Ref{}, false, newInvalidArgumentError("GetRef requires a definite path (no wildcard, scan, slice, multi-key, or predicate tokens)")
	}
	if len(cp.tokens) == 0 {
		return Ref{}, false, newInvalidArgumentError("empty compiled path")
	}

	cfg := NewConfig(opts...)
	if !cfg.provider.IsContainer(value) {
		return Ref{}, false, newInvalidArgumentError("root value must be a map or array")
	}

	last := cp.tokens[len(cp.tokens)-1]
	parentTokens := cp.tokens[:len(cp.tokens)-1]

	ec := &evalCtx{provider: cfg.provider, config: cfg}
	parent, found, err := runTokens(ec, parentTokens, value, false)
	if err != nil || !found {
		return Ref{}, false, err
	}

	switch filter := last.Filter.(type) {
	case *fieldFilter:
		if !cfg.provider.IsMap(parent) {
			return Ref{}, false, nil
		}
		_, present := cfg.provider.GetProperty(parent, filter.keys[0])
		return Ref{Parent: parent, Key: filter.keys[0]}, present, nil
	case *arrayIndexFilter:
		if !cfg.provider.IsArray(parent) {
			return Ref{}, false, nil
		}
		n, err := cfg.provider.Length(parent)
		if err != nil {
			return Ref{}, false, err
		}
		idx, ok := resolveExactIndex(filter.index, n)
		if !ok {
			return Ref{}, false, nil
		}
		return Ref{Parent: parent, Index: idx, IsIndex: true}, true, nil
	default:
		// rootFilter: a path of just "$" has no parent container, so there
		// is no key or index to refer to.
		return Ref{}, false, newInvalidArgumentError("GetRef requires a path ending in a field or index access")
	}
}

// IsPathDefinite reports whether path, once compiled, names exactly one
// location regardless of the document's contents — no token may be a
// wildcard, scan, slice, multi-key field, or predicate filter. A definite
// path is eligible for the jsonparser-backed fast read path (see
// fast_read.go).
func (cp *CompiledPath) IsPathDefinite() bool {
	for _, tok := range cp.tokens {
		switch filter := tok.Filter.(type) {
		case rootFilter:
			continue
		case *fieldFilter:
			if len(filter.keys) != 1 {
				return false
			}
		case *arrayIndexFilter:
			if filter.mode != modeSingleIndex {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Exists is a package-level convenience that compiles path and evaluates
// it against value in one call. Prefer Compile once and reuse the
// CompiledPath when evaluating the same path repeatedly.
func Exists(path string, value any, opts ...ReadOption) (bool, error) {
	cp, err := Compile(path)
	if err != nil {
		return false, err
	}
	return cp.Exists(value, opts...)
}

// Read is a package-level convenience that compiles path and evaluates it
// against value in one call. Prefer Compile once and reuse the
// CompiledPath when evaluating the same path repeatedly.
func Read(path string, value any, opts ...ReadOption) (any, error) {
	cp, err := Compile(path)
	if err != nil {
		return nil, err
	}
	return cp.Read(value, opts...)
}
