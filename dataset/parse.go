// Package dataset free-form input parsing.
package dataset

import (
	"strconv"
	"strings"
)

// ParseList turns a comma-separated string into an int slice. Tokens
// are trimmed of surrounding whitespace; tokens that do not parse as
// integers are dropped silently, so "5, x, 3" yields [5 3]. When no
// token survives, ParseList returns ErrNoValues and the caller is
// expected to keep its previous array untouched.
// Complexity: O(len(raw)) time, O(n) space.
func ParseList(raw string) ([]int, error) {
	var out []int
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, ErrNoValues
	}

	return out, nil
}

// ParseTarget resolves a search target from free-form input. A token
// that parses as an integer wins; otherwise the target falls back to
// the first element of values, and to zero when values is empty.
// The fallback keeps a search runnable even with blank input.
func ParseTarget(raw string, values []int) int {
	if v, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
		return v
	}
	if len(values) > 0 {
		return values[0]
	}

	return 0
}
