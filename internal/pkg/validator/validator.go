package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// report json names so the client sees the keys it sent
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// Validate checks struct tags and returns field -> failed rule, or nil.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	errors := make(map[string]string, len(verrs))
	for _, err := range verrs {
		errors[err.Field()] = err.Tag()
	}
	return errors
}

// Var validates a single value against a tag expression such as "email".
func Var(value any, tag string) bool {
	return validate.Var(value, tag) == nil
}
