package contactutil

import "strings"

// LooksLikeEmail is the regex-free email check: exactly one '@' that is
// neither the first nor the last character. Everything else is accepted, so
// "a b@c" passes here even though the email grammar rejects it.
func LooksLikeEmail(s string) bool {
	if strings.Count(s, "@") != 1 {
		return false
	}
	return s[0] != '@' && s[len(s)-1] != '@'
}
