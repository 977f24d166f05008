package lib

import (
	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	Validator *validator.Validate
}

// Validate returns the raw validator error so controllers can build
// field-level error responses out of it.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.Validator.Struct(i)
}
