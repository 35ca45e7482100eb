package validator

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
	messages  map[string]string
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report fields by their JSON name so error maps match request bodies.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterValidation("fullname", validateFullName)

	return &CustomValidator{
		validator: v,
		messages:  make(map[string]string),
	}
}

// RegisterMessage overrides the message reported when field fails tag.
// Call it during setup, before the validator is shared.
func (cv *CustomValidator) RegisterMessage(field, tag, message string) {
	cv.messages[field+"."+tag] = message
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// validateFullName accepts 3 to 100 ASCII letters and whitespace after trimming.
func validateFullName(fl validator.FieldLevel) bool {
	name := strings.TrimSpace(fl.Field().String())
	if len(name) < 3 || len(name) > 100 {
		return false
	}
	for _, r := range name {
		isASCIILetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if !isASCIILetter && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			if msg, ok := cv.messages[field+"."+e.Tag()]; ok {
				errors[field] = msg
				continue
			}
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "oneof":
				errors[field] = field + " must be one of: " + strings.ReplaceAll(e.Param(), " ", ", ")
			case "fullname":
				errors[field] = field + " must be 3-100 characters and contain only letters and spaces"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
