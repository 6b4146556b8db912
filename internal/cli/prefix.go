// Package cli provides terminal infrastructure for the cart command.
package cli

import (
	"fmt"
	"strings"
)

// MatchPrefix resolves input to one of choices by exact match or unique
// prefix, case-insensitively. kind names the choices in error messages.
func MatchPrefix(kind, input string, choices []string) (string, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return "", fmt.Errorf("%s must not be empty (expected one of: %s)", kind, strings.Join(choices, ", "))
	}

	var matches []string
	for _, c := range choices {
		lc := strings.ToLower(c)
		if lc == input {
			return c, nil
		}
		if strings.HasPrefix(lc, input) {
			matches = append(matches, c)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("unknown %s %q (expected one of: %s)", kind, input, strings.Join(choices, ", "))
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ambiguous %s %q matches: %s", kind, input, strings.Join(matches, ", "))
	}
}
