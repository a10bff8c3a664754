package utils

import (
	"regexp"
	"strings"
)

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// EscapeSearchTerm makes free text safe to embed in a case-insensitive
// MongoDB $regex filter.
func EscapeSearchTerm(term string) string {
	return regexp.QuoteMeta(strings.TrimSpace(term))
}

func CleanStrings(input []string) []string {
	cleaned := make([]string, 0, len(input))
	for _, value := range input {
		value = strings.TrimSpace(value)
		if value != "" {
			cleaned = append(cleaned, value)
		}
	}
	return cleaned
}
