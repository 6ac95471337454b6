package handler

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[+]?[\d\s\-()]{7,15}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "notblank", validators.NotBlank)
	mustRegister(v, "basicemail", matchString(emailPattern))
	mustRegister(v, "phone", matchString(phonePattern))
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

func matchString(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// ValidationError turns validator errors into a short user-facing message.
func ValidationError(err error) string {
	if err == nil {
		return ""
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return "Invalid request"
	}

	var errorMsgs []string
	for _, e := range validationErrors {
		switch e.Tag() {
		case "required", "notblank":
			errorMsgs = append(errorMsgs, fmt.Sprintf("%s is required", e.Field()))
		case "max":
			errorMsgs = append(errorMsgs, fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param()))
		case "basicemail":
			errorMsgs = append(errorMsgs, "Invalid email address")
		case "phone":
			errorMsgs = append(errorMsgs, "Invalid phone number")
		case "oneof":
			errorMsgs = append(errorMsgs, fmt.Sprintf("%s must be one of: %s", e.Field(), e.Param()))
		default:
			errorMsgs = append(errorMsgs, fmt.Sprintf("%s failed on the '%s' tag", e.Field(), e.Tag()))
		}
	}

	return strings.Join(errorMsgs, ", ")
}
