package domain

import "strings"

// NormalizeEmail trims and lowercases an email address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeName trims a display name and collapses inner whitespace runs
// into a single space. Case is preserved.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
