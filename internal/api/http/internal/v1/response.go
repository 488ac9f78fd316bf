package v1

// Errors
const (
	UnknownErrorCode    = 0
	UnknownErrorMessage = "internal server error"

	InvalidRequestCode     = 1000
	InvalidRequestMessage  = "invalid request body"
	ValidationFailedCode   = 1001
	UnauthorizedCode       = 1002
	UnauthorizedMessage    = "unauthorized"
	ForbiddenCode          = 1003
	ForbiddenMessage       = "you do not own this resource"
	NotFoundCode           = 1004
	NotFoundMessage        = "resource not found"
	AlreadyExistsCode      = 1005
	AlreadyExistsMessage   = "resource already exists"
	FieldValidationCode    = 6000
	FieldValidationMessage = "validation error"
)

type ErrorCode int
type ErrorMessage string

type ErrorStruct struct {
	ErrorCode    `json:"error_code"`
	ErrorMessage `json:"error_message"`
} // @name ErrorStruct

type ValidationErrorStruct struct {
	ErrorCode    int               `json:"error_code"`
	ErrorMessage string            `json:"error_message"`
	Errors       []ValidationError `json:"validation_errors"`
} // @name ValidationErrorStruct

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
}

func getErrorStruct(code ErrorCode) *ErrorStruct {
	errorStruct := &ErrorStruct{
		ErrorCode:    UnknownErrorCode,
		ErrorMessage: UnknownErrorMessage,
	}

	switch code {
	case InvalidRequestCode:
		errorStruct.ErrorCode = InvalidRequestCode
		errorStruct.ErrorMessage = InvalidRequestMessage
	case UnauthorizedCode:
		errorStruct.ErrorCode = UnauthorizedCode
		errorStruct.ErrorMessage = UnauthorizedMessage
	case ForbiddenCode:
		errorStruct.ErrorCode = ForbiddenCode
		errorStruct.ErrorMessage = ForbiddenMessage
	case NotFoundCode:
		errorStruct.ErrorCode = NotFoundCode
		errorStruct.ErrorMessage = NotFoundMessage
	case AlreadyExistsCode:
		errorStruct.ErrorCode = AlreadyExistsCode
		errorStruct.ErrorMessage = AlreadyExistsMessage
	}

	return errorStruct
}
