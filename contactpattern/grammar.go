package contactpattern

// Building blocks of the email grammar. It is the permissive pattern used by
// jQuery Validate, not a full RFC 5322 parser.
const (
	ucsChar = `[\u00A0-\uD7FF\uF900-\uFDCF\uFDF0-\uFFEF]`
	atext   = `[!#\$%&'\*\+\-\/=\?\^_` + "`" + `{\|}~]`

	atom    = `([a-z]|\d|` + atext + `|` + ucsChar + `)`
	dotAtom = `(` + atom + `+(\.` + atom + `+)*)`

	foldingSpace = `(((\x20|\x09)*(\x0d\x0a))?(\x20|\x09)+)?`
	quotedChar   = `(([\x01-\x08\x0b\x0c\x0e-\x1f\x7f]|\x21|[\x23-\x5b]|[\x5d-\x7e]|` + ucsChar + `)` +
		`|(\\([\x01-\x09\x0b\x0c\x0d-\x7f]|` + ucsChar + `)))`
	quotedString = `((\x22)(` + foldingSpace + quotedChar + `)*` + foldingSpace + `(\x22))`

	localPart = `(` + dotAtom + `|` + quotedString + `)`

	labelChar   = `([a-z]|\d|` + ucsChar + `)`
	tldChar     = `([a-z]|` + ucsChar + `)`
	hyphenated  = `([a-z]|\d|-|\.|_|~|` + ucsChar + `)`
	domainLabel = `(` + labelChar + `|(` + labelChar + hyphenated + `*` + labelChar + `))`
	topLabel    = `(` + tldChar + `|(` + tldChar + hyphenated + `*` + tldChar + `))`
)

// EmailGrammar matches a whole email address: local part, '@', one or more
// dotted labels and a letter-only top label with an optional trailing dot.
const EmailGrammar = `^` + localPart + `@(` + domainLabel + `\.)+` + topLabel + `\.?$`

// PhoneGrammar matches digit groups separated by at most one space, dash or
// dot, optionally parenthesised, with an optional leading "+" and a trailing
// "x"/"ext"/"ext." extension. A parenthesised "+" is only allowed when no
// leading "+" was used.
const PhoneGrammar = `^(\+\s?)?((?<!\+.*)\(\+?\d+([\s\-\.]?\d+)?\)|\d+)([\s\-\.]?(\(\d+([\s\-\.]?\d+)?\)|\d+))*(\s?(x|ext\.?)\s?\d+)?$`
