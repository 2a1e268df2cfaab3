package jsonpath

import (
	"strings"

	"github.com/mikeschinkel/jsonpath/predicate"
	"github.com/mikeschinkel/jsonpath/provider"
)

// evalCtx carries the state shared across one Read/Exists evaluation: the
// provider, the resolved options, and the remaining queue of externally
// supplied filters for "[?]" placeholders. filters is consumed in place
// (ec.filters = ec.filters[1:]) as ArrayQuery tokens are applied — it is a
// fresh copy per evaluation (see CompiledPath.readInternal), so concurrent
// evaluations of the same *CompiledPath never interfere, per spec.md §5.
type evalCtx struct {
	provider provider.Provider
	config   *Config
	filters  []predicate.ExternalFilter
}

// resolveFor builds a predicate.ResolveFunc that evaluates a "@…" sub-path
// against element, using a fresh evalCtx that shares this one's provider
// and config but never consumes this evaluation's ArrayQuery filter queue.
func (ec *evalCtx) resolveFor(element any) predicate.ResolveFunc {
	return func(subPath string) (any, bool, error) {
		rel := strings.TrimPrefix(strings.TrimSpace(subPath), "@")
		pathStr := "$" + rel
		tokens, err := tokenize(pathStr)
		if err != nil {
			return nil, false, err
		}
		subEc := &evalCtx{provider: ec.provider, config: ec.config}
		value, found, err := runTokens(subEc, tokens, element, false)
		if IsNotFound(err) && !ec.config.throwOnMissingProperty {
			return nil, false, nil
		}
		return value, found, err
	}
}

// runTokens walks tokens over value, threading the sticky array-context
// flag per spec.md §4.2. found is false (with no error) when the terminal
// token fails to match; a non-terminal token that fails to match surfaces
// as PathNotFound.
func runTokens(ec *evalCtx, tokens []Token, value any, inArrayCtx bool) (result any, found bool, err error) {
	cur := value
	arrCtx := inArrayCtx

	for _, tok := range tokens {
		ec.config.logger.Debug("jsonpath: applying token",
			"kind", tok.Filter.Kind().String(),
			"fragment", tok.Fragment,
			"in_array_ctx", arrCtx,
		)

		res, matched, applyErr := tok.Filter.Apply(ec, cur, arrCtx)
		if applyErr != nil {
			return nil, false, applyErr
		}
		if !matched {
			if !tok.IsEnd {
				return nil, false, newPathNotFoundError(tok.UpstreamFragment)
			}
			return nil, false, nil
		}
		cur = res
		if tok.Filter.IsArrayFilter() {
			arrCtx = true
		}
	}
	return cur, true, nil
}
