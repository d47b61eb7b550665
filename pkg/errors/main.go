package errors

import (
	"errors"
	"fmt"
)

const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusNoContent           = 204
	StatusBadRequest          = 400
	StatusNotFound            = 404
	StatusMethodNotAllowed    = 405
	StatusRequestTimeout      = 408
	StatusRequestTooLarge     = 413
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
)

const (
	ErrorTypeNotFound             = "NOT_FOUND"
	ErrorTypeInvalidRequest       = "INVALID_REQUEST"
	ErrorTypeMalformedRequestBody = "MALFORMED_REQUEST_BODY"
	ErrorTypeInternalServerError  = "INTERNAL_SERVER_ERROR"
	ErrorTypeUnknown              = "UNKNOWN_ERROR"
	ErrorTypeTooManyRequests      = "TOO_MANY_REQUESTS"
	ErrorTypeRateLimitExceeded    = "RATE_LIMIT_EXCEEDED"
	ErrorTypeRequestTimeout       = "REQUEST_TIMEOUT"
	ErrorTypeMethodNotAllowed     = "METHOD_NOT_ALLOWED"
	ErrorTypeServiceMisconfigured = "SERVICE_MISCONFIGURED"
	ErrorTypeDispatchFailed       = "DISPATCH_FAILED"
)

type AppError struct {
	Type    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(errType, message string, err error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}

func NewNotFoundError(message string, err error) *AppError {
	return NewAppError(ErrorTypeNotFound, message, err)
}

func NewInvalidRequestError(message string, err error) *AppError {
	return NewAppError(ErrorTypeInvalidRequest, message, err)
}

func NewMalformedRequestBodyError(message string, err error) *AppError {
	return NewAppError(ErrorTypeMalformedRequestBody, message, err)
}

func NewRateLimitExceededError(message string, err error) *AppError {
	return NewAppError(ErrorTypeRateLimitExceeded, message, err)
}

func NewServiceMisconfiguredError(message string, err error) *AppError {
	return NewAppError(ErrorTypeServiceMisconfigured, message, err)
}

func NewDispatchFailedError(message string, err error) *AppError {
	return NewAppError(ErrorTypeDispatchFailed, message, err)
}

func GetErrorType(err error) string {
	if err == nil {
		return ""
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}

	return ErrorTypeUnknown
}

// IsType reports whether any AppError in err's chain has the given type.
func IsType(err error, errType string) bool {
	return err != nil && GetErrorType(err) == errType
}
