package responses

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var GeneralServerError = ErrorResponse{
	Error:   true,
	Code:    6,
	Message: "Something went wrong. Please try again later",
}

var BadArgumentsError = ErrorResponse{
	Error:   true,
	Code:    8,
	Message: "Bad arguments",
}

var BadAuthError = ErrorResponse{
	Error:   true,
	Code:    1,
	Message: "bad auth",
}

var UnauthorizedError = ErrorResponse{
	Error:   true,
	Code:    1,
	Message: "authentication required",
}

var AccountNotFoundError = ErrorResponse{
	Error:   true,
	Code:    2,
	Message: "account not found",
}

var LoginTakenError = ErrorResponse{
	Error:   true,
	Code:    3,
	Message: "login is already taken",
}

var AccountCreationDisabledError = ErrorResponse{
	Error:   true,
	Code:    4,
	Message: "account creation is disabled",
}

// FieldErrorResponse is the invalid branch of form validation: the request
// was parseable but one or more fields failed their constraints, and each
// failure is reported against its field so the client can re-present the
// form.
type FieldErrorResponse struct {
	Error   bool              `json:"error"`
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func NewFieldErrorResponse(fields map[string]string) *FieldErrorResponse {
	return &FieldErrorResponse{
		Error:   true,
		Code:    8,
		Message: "Bad arguments",
		Fields:  fields,
	}
}

// FieldValidationError turns a validator error into a field->message map.
func FieldValidationError(err error) *FieldErrorResponse {
	fields := map[string]string{}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldError := range validationErrors {
			fields[fieldError.Field()] = fieldError.Tag()
		}
	}
	return NewFieldErrorResponse(fields)
}
