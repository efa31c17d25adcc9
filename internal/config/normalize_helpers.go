package config

import (
	"fmt"
	"strings"
)

// trimListField trims an order-sensitive list and drops empty entries, recording a warning
// when entries were dropped. Order and repeated entries are kept.
func trimListField(label string, in []string, res *NormalizationResult) []string {
	out := trimStringSlice(in)
	if len(out) != len(in) {
		res.Warnings = append(res.Warnings, fmt.Sprintf("dropped %d empty entries from %s", len(in)-len(out), label))
	}
	return out
}

// trimStringSlice removes empty entries (after trimming whitespace) from a string slice.
// Does not dedupe or sort. Use this for order-sensitive configuration fields.
func trimStringSlice(in []string) []string {
	if len(in) == 0 {
		return in
	}

	out := make([]string, 0, len(in))
	for _, p := range in {
		if tp := strings.TrimSpace(p); tp != "" {
			out = append(out, tp)
		}
	}
	return out
}
