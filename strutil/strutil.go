// Package strutil holds the string measurement and numeric rendering helpers
// shared by the writers. String positions are counted in code points when the
// input is valid UTF-8 and in bytes otherwise, so malformed input degrades to
// byte-wise semantics instead of failing.
package strutil

import (
	"strings"
	"unicode/utf8"
)

// Length returns the number of code points in s, or the number of bytes when
// s is not valid UTF-8.
func Length(s string) int {
	if utf8.ValidString(s) {
		return utf8.RuneCountInString(s)
	}
	return len(s)
}

// FirstOccurrence returns the position of the first occurrence of needle in
// haystack, or -1. The position is counted with the same semantics as Length.
func FirstOccurrence(needle, haystack string) int {
	idx := strings.Index(haystack, needle)
	if idx < 0 {
		return -1
	}
	return position(haystack, idx)
}

// LastOccurrence returns the position of the last occurrence of needle in
// haystack, or -1.
func LastOccurrence(needle, haystack string) int {
	idx := strings.LastIndex(haystack, needle)
	if idx < 0 {
		return -1
	}
	return position(haystack, idx)
}

func position(haystack string, byteIdx int) int {
	if utf8.ValidString(haystack) {
		return utf8.RuneCountInString(haystack[:byteIdx])
	}
	return byteIdx
}
