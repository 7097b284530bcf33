package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"bookstore/internal/entity"
	validaterules "bookstore/internal/validate"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("isbn", func(fl validator.FieldLevel) bool {
		return validaterules.ISBN(fl.Field().String())
	})
	validate.RegisterValidation("email_basic", func(fl validator.FieldLevel) bool {
		return validaterules.Email(fl.Field().String())
	})
}

// ValidateStruct runs the struct tags and translates failures into
// field-level messages for the error response body.
func ValidateStruct(s interface{}) []ErrorDetail {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var details []ErrorDetail
	for _, fieldErr := range err.(validator.ValidationErrors) {
		field := fieldErr.Field()
		var message string
		switch fieldErr.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "isbn":
			message = fmt.Sprintf("%s must match XXX-XXXXXXXXXX", field)
		case "email_basic":
			message = fmt.Sprintf("%s must be a valid email address", field)
		case "gt":
			message = fmt.Sprintf("%s must be greater than %s", field, fieldErr.Param())
		case "gte":
			message = fmt.Sprintf("%s must be at least %s", field, fieldErr.Param())
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		fieldName := strings.ToLower(field[:1]) + field[1:]
		details = append(details, ErrorDetail{Field: fieldName, Message: message})
	}

	return details
}

// pathID extracts a positive integer path parameter.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", entity.ErrInvalidInput, name)
	}
	return id, nil
}
