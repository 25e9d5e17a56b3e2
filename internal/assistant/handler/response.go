package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorDetail points at the offending request field.
type ErrorDetail struct {
	Path string `json:"path"`
	Info string `json:"info"`
}

type errorBody struct {
	Detail  string        `json:"detail"`
	Details []ErrorDetail `json:"details,omitempty"`
}

func Error(c *gin.Context, httpCode int, message string) {
	c.JSON(httpCode, errorBody{Detail: message})
}

// BadRequestWithValidation maps binding errors to a 400 with per-field detail.
func BadRequestWithValidation(c *gin.Context, err error) {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		details := make([]ErrorDetail, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			details = append(details, ErrorDetail{
				Path: fieldErr.Field(),
				Info: getValidationErrorMessage(fieldErr),
			})
		}
		c.JSON(http.StatusBadRequest, errorBody{Detail: "Validation failed", Details: details})
		return
	}
	Error(c, http.StatusBadRequest, err.Error())
}

func getValidationErrorMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fieldErr.Field() + " is required"
	case "oneof":
		return fieldErr.Field() + " must be one of: " + fieldErr.Param()
	default:
		return fieldErr.Field() + " is invalid"
	}
}
