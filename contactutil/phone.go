package contactutil

import (
	"strings"
	"unicode"
)

// PhonePunctuation lists the separators allowed in a phone number besides
// digits and whitespace.
const PhonePunctuation = "-.()"

// LooksLikePhone is the regex-free phone check. Plus signs are dropped,
// trailing whitespace and an extension are stripped, then the rest must
// contain at least one digit and only digits, whitespace or PhonePunctuation.
//
// Examples:
//
//	"+1 (555) 123-4567"  -> true
//	"555-1234 ext. 89"   -> true
//	"555-1234 extra"     -> false
//	"(--) ."             -> false (no digits)
func LooksLikePhone(s string) bool {
	s = strings.ReplaceAll(s, "+", "")
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	s = StripPhoneExtension(s)

	digitFound := false
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			digitFound = true
		case unicode.IsSpace(r), strings.ContainsRune(PhonePunctuation, r):
		default:
			return false
		}
	}
	return digitFound
}
