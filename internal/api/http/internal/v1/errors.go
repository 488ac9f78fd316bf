package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/KikiG13/travelife/internal/domain"
	"github.com/KikiG13/travelife/pkg/logger"
)

// bindingError is a request body gin could not decode.
type bindingError struct {
	err error
}

func (e *bindingError) Error() string { return "bind request: " + e.err.Error() }
func (e *bindingError) Unwrap() error { return e.err }

// bindErr keeps validator errors as they are so they get field-level messages.
func bindErr(err error) error {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		return verr
	}
	return &bindingError{err: err}
}

// errorMiddleware is the only place that turns errors into responses.
// Handlers and middlewares record failures with c.Error and stop.
func (h *Handler) errorMiddleware(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	writeError(c, c.Errors.Last().Err)
}

func writeError(c *gin.Context, err error) {
	var (
		verr validator.ValidationErrors
		berr *bindingError
	)

	switch {
	case errors.As(err, &verr):
		validationErrorResponse(c, verr)
		return
	case errors.As(err, &berr):
		errorResponse(c, http.StatusBadRequest, InvalidRequestCode)
	case errors.Is(err, domain.ErrValidation):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, &ErrorStruct{
			ErrorCode:    ValidationFailedCode,
			ErrorMessage: ErrorMessage(err.Error()),
		})
	case errors.Is(err, domain.ErrUnauthorized):
		errorResponse(c, http.StatusUnauthorized, UnauthorizedCode)
	case errors.Is(err, domain.ErrForbidden):
		errorResponse(c, http.StatusForbidden, ForbiddenCode)
	case errors.Is(err, domain.ErrNotFound):
		errorResponse(c, http.StatusNotFound, NotFoundCode)
	case errors.Is(err, domain.ErrDuplicateEntry):
		errorResponse(c, http.StatusConflict, AlreadyExistsCode)
	default:
		logger.Error("request failed",
			zap.Error(err),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
		)
		errorResponse(c, http.StatusInternalServerError, UnknownErrorCode)
		return
	}

	logger.Debug("request rejected", zap.Error(err), zap.Int("status", c.Writer.Status()))
}

func errorResponse(c *gin.Context, status int, code ErrorCode) {
	c.AbortWithStatusJSON(status, getErrorStruct(code))
}

func validationErrorResponse(c *gin.Context, verr validator.ValidationErrors) {
	out := make([]ValidationError, len(verr))
	for i, ferr := range verr {
		out[i] = ValidationError{ferr.Field(), msgForTag(ferr.Field(), ferr.Tag(), ferr.Param())}
	}
	response := ValidationErrorStruct{
		ErrorCode:    FieldValidationCode,
		ErrorMessage: FieldValidationMessage,
		Errors:       out,
	}
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, response)
}

func msgForTag(field string, tag string, value string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "notblank":
		return fmt.Sprintf("%s must not be blank", field)
	case "email":
		return "invalid email format"
	case "min":
		return fmt.Sprintf("%s must be at least %v characters", field, value)
	case "max":
		return fmt.Sprintf("%s must be at most %v characters", field, value)
	case "eqfield":
		return fmt.Sprintf("%s must match %s", field, value)
	}
	return tag
}
