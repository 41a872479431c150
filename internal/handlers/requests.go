package handlers

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

// TitleRequest defines the DTO for the title API. The title itself is never
// validated: any string, including the empty one, is a valid page title.
type TitleRequest struct {
	Title string `query:"title"`
	Lang  string `query:"lang" validate:"omitempty,bcp47_language_tag"`
}
