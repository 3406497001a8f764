// Package inputval validates and normalizes evidence form input.
package inputval

import (
	"strconv"
	"strings"

	"github.com/dalemusser/evidencehub/internal/domain/models"
)

// ParseWeek parses a week form value. A value that is not a number returns
// def; numeric values are clamped into program range.
func ParseWeek(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	if n < models.MinWeek {
		return models.MinWeek
	}
	if n > models.MaxWeek {
		return models.MaxWeek
	}
	return n
}

// SplitTags parses a comma-separated tag field: split on commas, trim each
// piece, drop empties. Returns nil when no tags remain.
func SplitTags(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
