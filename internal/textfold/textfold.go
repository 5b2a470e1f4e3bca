// Package textfold provides caseless comparison for user-entered Spanish
// text (roles, names, free-text notes).
package textfold

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Fold trims s, normalizes it to NFC and applies full Unicode case folding.
// A new Caser is made per call since Casers are stateful.
func Fold(s string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(s)))
}

// Equal reports whether a and b are equal after folding.
func Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}

// Contains reports whether needle occurs in haystack after folding both.
// An empty needle never matches.
func Contains(haystack, needle string) bool {
	n := Fold(needle)
	if n == "" {
		return false
	}
	return strings.Contains(Fold(haystack), n)
}
