// internal/utils/validator.go
package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/luminahq/lumina-inventory/internal/models"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("product_category", validateProductCategory)
	validate.RegisterValidation("filter_category", validateFilterCategory)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validateProductCategory accepts only storable categories; the "All"
// sentinel is a filter value and never a stored one.
func validateProductCategory(fl validator.FieldLevel) bool {
	return models.IsValidCategory(fl.Field().String())
}

func validateFilterCategory(fl validator.FieldLevel) bool {
	return models.IsValidFilterCategory(fl.Field().String())
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "datetime":
		return e.Field() + " must be a date in YYYY-MM-DD format"
	case "product_category":
		return e.Field() + " must be one of: " + strings.Join(models.Categories, ", ")
	case "filter_category":
		return e.Field() + " must be \"All\" or one of: " + strings.Join(models.Categories, ", ")
	default:
		return e.Field() + " is invalid"
	}
}
