package errors

import (
	"errors"
	"net/http"
)

// ErrorBody is the JSON envelope returned for every failed request.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the machine-readable code and human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HTTPStatus maps an application error to its HTTP status code.
// Errors not produced by this package map to 500.
func HTTPStatus(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Type {
	case ErrorTypeNotFound:
		return http.StatusNotFound
	case ErrorTypeBadRequest:
		return http.StatusBadRequest
	case ErrorTypeConflict:
		return http.StatusConflict
	case ErrorTypeUnauthorized:
		return http.StatusUnauthorized
	case ErrorTypeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Body builds the JSON error envelope for err. Internal errors are
// masked with a generic message so details never leak to clients.
func Body(err error) ErrorBody {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Type != ErrorTypeInternal {
		return ErrorBody{Error: ErrorDetail{
			Code:    string(appErr.Type),
			Message: appErr.Message,
		}}
	}
	return ErrorBody{Error: ErrorDetail{
		Code:    string(ErrorTypeInternal),
		Message: "internal server error",
	}}
}
