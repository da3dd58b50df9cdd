package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("symptom_list", validateSymptomList)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validateSymptomList rejects nil and empty lists, which `required` lets through for slices.
func validateSymptomList(fl validator.FieldLevel) bool {
	field := fl.Field()
	return field.IsValid() && !field.IsZero() && field.Len() > 0
}
