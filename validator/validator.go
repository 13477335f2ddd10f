// Package validator exposes a shared go-playground validator with the
// email_or_phone tag registered.
//
//	type Contact struct {
//		Login *string `validate:"email_or_phone"`          // nil passes
//		Reach string  `validate:"required,email_or_phone"` // must be present
//	}
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vortex-fintech/go-contact/emailorphone"
)

// EmailOrPhoneTag accepts an email address or a phone number. Nil pointers
// pass; combine with "required" to demand a value.
const EmailOrPhoneTag = "email_or_phone"

var v *validator.Validate

func init() {
	v = validator.New()
	if err := RegisterEmailOrPhone(v, emailorphone.Default()); err != nil {
		panic(fmt.Sprintf("validator: register %s: %v", EmailOrPhoneTag, err))
	}
}

func Instance() *validator.Validate {
	return v
}

// RegisterEmailOrPhone adds EmailOrPhoneTag to another validator instance,
// backed by c.
func RegisterEmailOrPhone(val *validator.Validate, c *emailorphone.Classifier) error {
	return val.RegisterValidation(EmailOrPhoneTag, func(fl validator.FieldLevel) bool {
		return emailOrPhone(c, fl.Field())
	}, true)
}

func emailOrPhone(c *emailorphone.Classifier, field reflect.Value) bool {
	switch field.Kind() {
	case reflect.Pointer, reflect.Interface:
		if field.IsNil() {
			return true
		}
		return emailOrPhone(c, field.Elem())
	case reflect.String:
		return c.ValidString(field.String())
	default:
		return false
	}
}

// Validate returns field path -> reason code, or nil when i is valid.
func Validate(i any) map[string]string {
	if err := v.Struct(i); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			out := make(map[string]string)
			for _, e := range errs {
				out[fieldPath(e)] = mapTagToCode(e.Tag())
			}
			return out
		}
		return map[string]string{"_error": "validation_failed"}
	}
	return nil
}

// fieldPath drops the root type from the namespace: "Form.User.Login" -> "User.Login".
func fieldPath(e validator.FieldError) string {
	ns := e.StructNamespace()
	if i := strings.Index(ns, "."); i >= 0 && i+1 < len(ns) {
		return ns[i+1:]
	}
	return e.Field()
}
