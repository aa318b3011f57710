package utils

import "strings"

// CleanList trims every entry and drops the empty ones, keeping order.
// The result is never nil so it can be written to NOT NULL text[] columns.
func CleanList(values []string) []string {
	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		cleaned = append(cleaned, v)
	}
	return cleaned
}

// SplitList splits a delimited string (e.g. "email; instagram") into a cleaned list
func SplitList(value string, sep string) []string {
	if strings.TrimSpace(value) == "" {
		return []string{}
	}
	return CleanList(strings.Split(value, sep))
}
