package validators

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a json field path (e.g. "addresses[0].city") to a
// user-facing message. Drafts are validated before any database write.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report errors under json field names so the dashboard can attach
	// them to form fields directly.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkStruct runs tag validation and folds the result into errs.
func checkStruct(errs FieldErrors, s interface{}) {
	err := validate.Struct(s)
	if err == nil {
		return
	}
	invalid, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["_"] = err.Error()
		return
	}
	for _, fe := range invalid {
		errs[fieldPath(fe)] = message(fe)
	}
}

// fieldPath strips the root struct name from the namespace:
// "Customer.addresses[0].city" -> "addresses[0].city".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "Invalid email address"
	case "e164":
		return "Invalid phone number"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "dive":
		return "is invalid"
	}
	return "is invalid"
}
