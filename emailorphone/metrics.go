package emailorphone

// Path names the check that produced a verdict.
type Path string

const (
	PathEmailRegex    Path = "email_regex"
	PathPhoneRegex    Path = "phone_regex"
	PathEmailFallback Path = "email_fallback"
	PathPhoneFallback Path = "phone_fallback"
	PathRejected      Path = "rejected"
)

// Valid reports whether the path accepted the value.
func (p Path) Valid() bool {
	return p != PathRejected
}

// Metrics collects classifier statistics. See the prommetrics package for a
// Prometheus implementation.
type Metrics interface {
	ObserveVerdict(path string)
	IncMatchError(grammar string)
}
