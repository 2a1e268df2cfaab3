package jsonpath

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mikeschinkel/jsonpath/predicate"
)

// tokenize lexes a non-empty trimmed path string into an ordered token
// list, per spec.md §4.1. Bracket scanning is quote-aware: a single-quoted
// segment inside "[...]" is scanned literally, including any '[', ']', or
// '.' it contains.
func tokenize(path string) (tokens []Token, err error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		err = newInvalidPathError("path must not be empty", "")
		return tokens, err
	}

	var upstream string
	var i int

	switch trimmed[0] {
	case '$':
		tokens = append(tokens, Token{Fragment: "$", IsRoot: true, UpstreamFragment: "$", Filter: rootFilter{}})
		upstream = "$"
		i = 1
	case '@':
		tokens = append(tokens, Token{Fragment: "@", UpstreamFragment: "@", Filter: rootFilter{}})
		upstream = "@"
		i = 1
	default:
		err = newInvalidPathError("path must start with '$' or '@'", trimmed)
		return nil, err
	}

	if i < len(trimmed) && trimmed[i] == '$' {
		err = newInvalidPathError("unexpected '$'", trimmed)
		return nil, err
	}

	for i < len(trimmed) {
		switch trimmed[i] {
		case '.':
			var tok Token
			var advance int
			tok, advance, err = parseDotSegment(trimmed[i:])
			if err != nil {
				return nil, err
			}
			i += advance
			upstream += trimmed[i-advance : i]
			tok.UpstreamFragment = upstream
			tokens = append(tokens, tok)

		case '[':
			var frag string
			var tok Token
			var advance int
			frag, tok, advance, err = parseBracket(trimmed[i:])
			if err != nil {
				return nil, err
			}
			i += advance
			upstream += frag
			tok.Fragment = frag
			tok.UpstreamFragment = upstream
			tokens = append(tokens, tok)

		default:
			err = newInvalidPathError(fmt.Sprintf("unexpected character %q at position %d", trimmed[i], i), trimmed)
			return nil, err
		}
	}

	if len(tokens) > 1 {
		tokens[len(tokens)-1].IsEnd = true
	} else if len(tokens) == 1 {
		tokens[0].IsEnd = true
	}
	return tokens, err
}

// parseDotSegment handles ".name", "..name", "..", and ".*" starting at a
// '.' character.
func parseDotSegment(s string) (tok Token, advance int, err error) {
	if len(s) >= 2 && s[1] == '.' {
		advance = 2
		tok = Token{Fragment: "..", Filter: scanFilter{}}
		rest := s[2:]
		if rest == "" || rest[0] == '.' || rest[0] == '[' {
			return tok, advance, err
		}
		if _, n := readIdentifierOrStar(rest); n > 0 {
			// "..name" / "..*": consume only the first '.', so the caller
			// parses the remaining ".name" or ".*" as its own token after
			// this Scan.
			advance = 1
		}
		return tok, advance, err
	}

	if len(s) < 2 {
		err = newInvalidPathError("trailing '.'", s)
		return tok, advance, err
	}
	rest := s[1:]
	if rest[0] == '[' || rest[0] == '.' {
		err = newInvalidPathError(fmt.Sprintf("expected identifier after '.' near %q", s), s)
		return tok, advance, err
	}
	key, n := readIdentifierOrStar(rest)
	if n == 0 {
		err = newInvalidPathError(fmt.Sprintf("expected identifier after '.' near %q", s), s)
		return tok, advance, err
	}
	advance = 1 + n
	if key == "*" {
		tok = Token{Fragment: "*", Filter: wildcardFilter{}}
	} else {
		tok = Token{Fragment: key, Filter: newFieldFilter([]string{key})}
	}
	return tok, advance, err
}

func readIdentifierOrStar(s string) (ident string, n int) {
	if len(s) > 0 && s[0] == '*' {
		return "*", 1
	}
	for n < len(s) && isIdentChar(s[n]) {
		n++
	}
	return s[:n], n
}

func isIdentChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') || c == '_' || c == '-'
}

// parseBracket parses a "[...]" segment starting at '[', returning the
// literal fragment text, the resulting Token (Fragment/UpstreamFragment
// unset — the caller fills those in), and how many bytes were consumed.
func parseBracket(s string) (frag string, tok Token, advance int, err error) {
	end, err := findMatchingBracket(s)
	if err != nil {
		return frag, tok, advance, err
	}
	inner := s[1:end]
	frag = s[:end+1]
	advance = end + 1
	trimmedInner := strings.TrimSpace(inner)

	switch {
	case trimmedInner == "*":
		tok = Token{Filter: allArrayItemsFilter{}}
		return frag, tok, advance, err

	case trimmedInner == "?":
		tok = Token{Filter: arrayQueryFilter{}}
		return frag, tok, advance, err

	case strings.HasPrefix(trimmedInner, "?(") && strings.HasSuffix(trimmedInner, ")"):
		body := trimmedInner[2 : len(trimmedInner)-1]
		var node predicate.Node
		node, err = predicate.Parse(body)
		if err != nil {
			err = newInvalidPathError(err.Error(), frag)
			return frag, tok, advance, err
		}
		if predicate.HasComparator(body) {
			tok = Token{Filter: &arrayEvalFilter{expr: body, node: node}}
		} else {
			tok = Token{Filter: &hasPathFilter{expr: body, node: node}}
		}
		return frag, tok, advance, err

	default:
		tok, err = parseBracketBody(frag, trimmedInner)
		return frag, tok, advance, err
	}
}

// findMatchingBracket returns the index (relative to s) of the ']' that
// closes the '[' at s[0], skipping over single-quoted content.
func findMatchingBracket(s string) (end int, err error) {
	inQuote := false
	for i := 1; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && inQuote && i+1 < len(s):
			i++ // skip escaped character inside the quoted segment
		case c == '\'':
			inQuote = !inQuote
		case c == ']' && !inQuote:
			return i, err
		}
	}
	err = newInvalidPathError("unclosed '['", s)
	return 0, err
}

func parseBracketBody(frag, inner string) (tok Token, err error) {
	parts := splitTopLevel(inner, ',')

	if len(parts) > 1 {
		if allQuoted(parts) {
			keys := make([]string, len(parts))
			for i, p := range parts {
				keys[i] = unquoteBracketString(strings.TrimSpace(p))
			}
			tok = Token{Filter: newFieldFilter(keys)}
			return tok, err
		}
		if idxs, ok := allInts(parts); ok {
			tok = Token{Filter: &arrayIndexFilter{mode: modeIndexList, indices: idxs}}
			return tok, err
		}
		err = newInvalidPathError("bracket list must be all quoted keys or all integers", frag)
		return tok, err
	}

	only := strings.TrimSpace(parts[0])
	if only == "" {
		err = newInvalidPathError("empty brackets", frag)
		return tok, err
	}

	if strings.Contains(only, ":") {
		return parseSlice(frag, only)
	}

	if isQuoted(only) {
		tok = Token{Filter: newFieldFilter([]string{unquoteBracketString(only)})}
		return tok, err
	}

	if n, convErr := strconv.Atoi(only); convErr == nil {
		tok = Token{Filter: &arrayIndexFilter{mode: modeSingleIndex, index: n}}
		return tok, err
	}

	err = newInvalidPathError(fmt.Sprintf("invalid bracket content %q", only), frag)
	return tok, err
}

func parseSlice(frag, body string) (tok Token, err error) {
	parts := strings.SplitN(body, ":", 2)
	if len(parts) != 2 || strings.Contains(parts[1], ":") {
		err = newInvalidPathError(fmt.Sprintf("invalid slice %q", body), frag)
		return tok, err
	}
	leftStr := strings.TrimSpace(parts[0])
	rightStr := strings.TrimSpace(parts[1])

	var left, right *int
	if leftStr != "" {
		v, convErr := strconv.Atoi(leftStr)
		if convErr != nil {
			err = newInvalidPathError(fmt.Sprintf("invalid slice bound %q", leftStr), frag)
			return tok, err
		}
		left = &v
	}
	if rightStr != "" {
		v, convErr := strconv.Atoi(rightStr)
		if convErr != nil {
			err = newInvalidPathError(fmt.Sprintf("invalid slice bound %q", rightStr), frag)
			return tok, err
		}
		right = &v
	}

	switch {
	case left == nil && right != nil:
		tok = Token{Filter: &arrayIndexFilter{mode: modeHeadSlice, n: *right}}
	case left != nil && right == nil && *left < 0:
		tok = Token{Filter: &arrayIndexFilter{mode: modeTailSlice, n: -(*left)}}
	default:
		tok = Token{Filter: &arrayIndexFilter{mode: modeRangeSlice, a: left, b: right}}
	}
	return tok, err
}

// splitTopLevel splits s on sep, ignoring occurrences of sep inside a
// single-quoted segment.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	inQuote := false
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && inQuote && i+1 < len(s):
			i++
		case c == '\'':
			inQuote = !inQuote
		case c == sep && !inQuote:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	parts = append(parts, s[start:])
	return parts
}

func isQuoted(s string) bool {
	return len(s) >= 2 && strings.HasPrefix(s, "'") && strings.HasSuffix(s, "'")
}

func unquoteBracketString(s string) string {
	if isQuoted(s) {
		return strings.ReplaceAll(s[1:len(s)-1], `\'`, "'")
	}
	return s
}

func allQuoted(parts []string) bool {
	for _, p := range parts {
		if !isQuoted(strings.TrimSpace(p)) {
			return false
		}
	}
	return true
}

func allInts(parts []string) ([]int, bool) {
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}
