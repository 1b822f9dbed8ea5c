package utils

import "strings"

// SplitTrimmed splits a comma-separated list, trims each entry and drops
// the empty ones. An empty input yields nil.
func SplitTrimmed(csv string) []string {
	if csv == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(csv, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
