package cli

import (
	"fmt"
	"strings"
)

// parseAssignments turns key=value tokens into a map. A token without '='
// continues the previous value, so "bio=paints red foxes" survives
// whitespace splitting.
func parseAssignments(args []string) (map[string]string, []string, error) {
	values := make(map[string]string, len(args))
	var order []string
	last := ""
	for _, tok := range args {
		key, value, ok := strings.Cut(tok, "=")
		if !ok || key == "" {
			if last == "" {
				return nil, nil, fmt.Errorf("%w: expected key=value, got %q", errUsage, tok)
			}
			values[last] += " " + tok
			continue
		}
		if _, seen := values[key]; !seen {
			order = append(order, key)
		}
		values[key] = value
		last = key
	}
	return values, order, nil
}
