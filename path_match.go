package jsonpath

import "github.com/tidwall/match"

// MatchKeys filters keys down to those matching a shell-style glob pattern
// (tidwall/match semantics: '*' and '?' wildcards, '[...]' character
// classes). Used by callers — notably the CLI's key-listing mode — that
// want to narrow a map's keys before building a path from them, without
// pulling in a full glob/regex dependency of their own.
func MatchKeys(keys []string, pattern string) []string {
	var out []string
	for _, k := range keys {
		if match.Match(k, pattern) {
			out = append(out, k)
		}
	}
	return out
}
