package entity

import (
	"regexp"
	"strings"
)

var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// ValidAddress reports whether s looks like a 20-byte hex wallet address.
func ValidAddress(s string) bool {
	return addressPattern.MatchString(s)
}

// EqualAddress compares two wallet addresses case-insensitively.
func EqualAddress(a, b string) bool {
	return strings.EqualFold(a, b)
}

// NormalizeAddress lowercases an address for use as a map or compound key.
func NormalizeAddress(a string) string {
	return strings.ToLower(a)
}
