package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ContainsFold is a case-insensitive substring check. needle must already
// be lower-cased.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

// PadID renders prefix+n zero-padded to three digits (TRP001).
func PadID(prefix string, n int) string {
	return fmt.Sprintf("%s%03d", prefix, n)
}

// SequenceOf extracts n from an id produced by PadID; ok is false for
// ids with another prefix or a non-numeric tail.
func SequenceOf(prefix, id string) (n int, ok bool) {
	if !strings.HasPrefix(id, prefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(id, prefix))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
