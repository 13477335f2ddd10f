package contactutil

import (
	"strings"
	"unicode"
)

// extensionMarkers are tried in order; the first marker whose last occurrence
// is followed by digits wins.
var extensionMarkers = []string{"ext.", "ext", "x"}

// StripPhoneExtension removes a trailing phone extension ("ext. 12", "ext12",
// "x12") and returns the number before the marker. Markers are matched
// ASCII case-insensitively at their last occurrence. When no marker is
// followed by an all-digit remainder the input is returned unchanged.
//
// Examples:
//
//	"555-1234 ext. 89" -> "555-1234 "
//	"555-1234 X 7"     -> "555-1234 "
//	"x-ray x123"       -> "x-ray "
//	"555-1234 extra"   -> "555-1234 extra"
func StripPhoneExtension(s string) string {
	for _, marker := range extensionMarkers {
		idx := lastIndexFoldASCII(s, marker)
		if idx < 0 {
			continue
		}
		if isExtensionDigits(s[idx+len(marker):]) {
			return s[:idx]
		}
	}
	return s
}

func isExtensionDigits(s string) bool {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// lastIndexFoldASCII is strings.LastIndex with ASCII case folding. Byte
// offsets stay aligned with s, unlike strings.ToLower on non-ASCII input.
func lastIndexFoldASCII(s, substr string) int {
	n := len(substr)
	for i := len(s) - n; i >= 0; i-- {
		if equalFoldASCII(s[i:i+n], substr) {
			return i
		}
	}
	return -1
}

func equalFoldASCII(a, b string) bool {
	for i := 0; i < len(a); i++ {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
