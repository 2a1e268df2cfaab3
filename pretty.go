package jsonpath

import "github.com/tidwall/pretty"

// Pretty serializes value through the given provider and re-indents the
// result with tidwall/pretty, for human-facing CLI/MCP output. It does not
// otherwise change the bytes' semantics.
func Pretty(value any, opts ...ReadOption) ([]byte, error) {
	cfg := NewConfig(opts...)
	raw, err := cfg.provider.Serialize(value)
	if err != nil {
		return nil, err
	}
	return pretty.Pretty(raw), nil
}

// PrettyColor is Pretty with ANSI color codes for terminal display.
func PrettyColor(value any, opts ...ReadOption) ([]byte, error) {
	cfg := NewConfig(opts...)
	raw, err := cfg.provider.Serialize(value)
	if err != nil {
		return nil, err
	}
	return pretty.Color(pretty.Pretty(raw), nil), nil
}
