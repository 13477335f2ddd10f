package validator

var tagMap = map[string]string{
	"required":      "required",
	"omitempty":     "optional",
	EmailOrPhoneTag: "invalid_email_or_phone",
	"email":         "invalid_email",
	"e164":          "invalid_phone",
	"max":           "too_long",
	"min":           "too_short",
	"len":           "invalid_length",
	"oneof":         "invalid_choice",
	"excludes":      "should_not_contain",
}

func mapTagToCode(tag string) string {
	if code, ok := tagMap[tag]; ok {
		return code
	}
	return "invalid"
}
