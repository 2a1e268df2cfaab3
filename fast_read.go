package jsonpath

import (
	"fmt"
	"strconv"

	"github.com/buger/jsonparser"

	"github.com/mikeschinkel/jsonpath/provider"
)

// ReadFast evaluates a definite path (see IsPathDefinite) directly against
// raw JSON bytes using jsonparser, skipping the usual parse-into-provider
// step entirely for the common case of reading one scalar leaf out of a
// large document. It falls back to provider.New().Parse for a matched
// object or array, so the order-preservation invariant still holds for
// container results.
func (cp *CompiledPath) ReadFast(data []byte) (any, error) {
	if !cp.IsPathDefinite() {
		return nil, newInvalidArgumentError("ReadFast requires a definite path (no wildcard, scan, slice, multi-key, or predicate tokens)")
	}

	keys := make([]string, 0, len(cp.tokens))
	for _, tok := range cp.tokens {
		switch filter := tok.Filter.(type) {
		case rootFilter:
			continue
		case *fieldFilter:
			keys = append(keys, filter.keys[0])
		case *arrayIndexFilter:
			if filter.index < 0 {
				return nil, newUnsupportedError("ReadFast does not support negative array indices")
			}
			keys = append(keys, fmt.Sprintf("[%d]", filter.index))
		}
	}

	if len(keys) == 0 {
		v, err := provider.New().Parse(data)
		if err != nil {
			return nil, newInvalidArgumentError(err.Error())
		}
		return v, nil
	}

	raw, dataType, _, err := jsonparser.Get(data, keys...)
	if err != nil {
		if err == jsonparser.KeyPathNotFoundError {
			return nil, nil
		}
		return nil, newInvalidArgumentError(err.Error())
	}
	return decodeFastValue(raw, dataType)
}

func decodeFastValue(raw []byte, dataType jsonparser.ValueType) (any, error) {
	switch dataType {
	case jsonparser.Null:
		return nil, nil
	case jsonparser.Boolean:
		b, err := strconv.ParseBool(string(raw))
		if err != nil {
			return nil, newInvalidArgumentError(err.Error())
		}
		return b, nil
	case jsonparser.Number:
		f, err := strconv.ParseFloat(string(raw), 64)
		if err != nil {
			return nil, newInvalidArgumentError(err.Error())
		}
		return f, nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(raw)
		if err != nil {
			return nil, newInvalidArgumentError(err.Error())
		}
		return s, nil
	case jsonparser.Object, jsonparser.Array:
		return provider.New().Parse(raw)
	default:
		return nil, newUnsupportedError("ReadFast encountered an unsupported JSON value type")
	}
}
