package models

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// "present" is the price rule: any non-falsy JSON value.
	if err := v.RegisterValidation("present", func(fl validator.FieldLevel) bool {
		p, ok := fl.Field().Interface().(Price)
		return ok && p.Present()
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate checks a request struct against its validate tags.
func Validate(req interface{}) error {
	return validate.Struct(req)
}

// MissingFields lists the JSON names of the fields that failed validation.
func MissingFields(err error) []string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return fields
}
