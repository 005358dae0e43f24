package validator

import "github.com/go-playground/validator/v10"

// ErrorResponse describes a single failed validation rule.
type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = validator.New()

// ValidateStruct runs the struct's validate tags and returns one entry per
// failed rule.
func ValidateStruct(data interface{}) []*ErrorResponse {
	var errs []*ErrorResponse
	if err := validate.Struct(data); err != nil {
		for _, ve := range err.(validator.ValidationErrors) {
			errs = append(errs, &ErrorResponse{
				FailedField: ve.StructNamespace(),
				Tag:         ve.Tag(),
				Value:       ve.Param(),
			})
		}
	}
	return errs
}

// HasTag reports whether any failure was raised by the given rule. The
// product service uses it to tell "field missing" apart from "value out of
// range".
func HasTag(errs []*ErrorResponse, tag string) bool {
	for _, e := range errs {
		if e.Tag == tag {
			return true
		}
	}
	return false
}
