package cmd

import (
	"fmt"
	"strconv"
	"strings"
)

// parsePosition converts a 1-based position argument to a 0-based index.
// The index is not bounds-checked; callers decide what out of range means.
func parsePosition(what, arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("invalid %s number %q", what, arg)
	}
	return n - 1, nil
}
