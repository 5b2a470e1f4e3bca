package domain

import "strings"

// CoalesceStr returns the first value that is non-empty after trimming.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// CoalesceGender returns the first gender that is set.
func CoalesceGender(vals ...Gender) Gender {
	for _, g := range vals {
		if g != "" {
			return g
		}
	}
	return ""
}
