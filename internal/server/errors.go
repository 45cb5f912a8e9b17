package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	crudeimportdomain "github.com/smallbiznis/oilimports/internal/crudeimport/domain"
	dimensiondomain "github.com/smallbiznis/oilimports/internal/dimension/domain"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrNotFound           = errors.New("not_found")
	ErrInvalidRequest     = errors.New("invalid_request")
	ErrRateLimited        = errors.New("rate_limited")
	ErrServiceUnavailable = errors.New("service_unavailable")
)

// validationFields maps domain error codes to request field names.
var validationFields = map[error]string{
	crudeimportdomain.ErrInvalidID:                  "uuid",
	crudeimportdomain.ErrInvalidYear:                "year",
	crudeimportdomain.ErrInvalidMonth:               "month",
	crudeimportdomain.ErrInvalidQuantity:            "quantity",
	crudeimportdomain.ErrInvalidOriginName:          "originName",
	crudeimportdomain.ErrInvalidOriginTypeName:      "originTypeName",
	crudeimportdomain.ErrInvalidDestinationName:     "destinationName",
	crudeimportdomain.ErrInvalidDestinationTypeName: "destinationTypeName",
	crudeimportdomain.ErrInvalidGradeName:           "gradeName",
	crudeimportdomain.ErrInvalidSkip:                "skip",
	crudeimportdomain.ErrInvalidLimit:               "limit",
	crudeimportdomain.ErrEmptyBatch:                 "records",
	crudeimportdomain.ErrBatchTooLarge:              "records",
	dimensiondomain.ErrInvalidKind:                  "kind",
	dimensiondomain.ErrInvalidName:                  "name",
}

var validationMessages = map[error]string{
	crudeimportdomain.ErrInvalidID:       "must be a UUID",
	crudeimportdomain.ErrInvalidYear:     fmt.Sprintf("required, between %d and %d", crudeimportdomain.MinYear, crudeimportdomain.MaxYear),
	crudeimportdomain.ErrInvalidMonth:    fmt.Sprintf("required, between %d and %d", crudeimportdomain.MinMonth, crudeimportdomain.MaxMonth),
	crudeimportdomain.ErrInvalidQuantity: fmt.Sprintf("required, at least %d", crudeimportdomain.MinQuantity),
	crudeimportdomain.ErrInvalidSkip:     "must be zero or greater",
	crudeimportdomain.ErrInvalidLimit:    "out of range",
	crudeimportdomain.ErrEmptyBatch:      "at least one record is required",
	crudeimportdomain.ErrBatchTooLarge:   "too many records",
	dimensiondomain.ErrInvalidKind:       "unknown dimension",
}

// ErrorHandlingMiddleware renders the last error recorded on the context
// unless the handler already wrote a response.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}
		status, payload := mapError(c.Errors.Last().Err)
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.Abort()
}

func invalidRequestError() error {
	return &ValidationErrors{Errors: []ValidationError{{
		Field:   "request",
		Code:    ErrInvalidRequest.Error(),
		Message: "request body is not valid JSON for this endpoint",
	}}}
}

// errorClasses maps non-validation errors to responses, first match wins.
var errorClasses = []struct {
	target  error
	status  int
	typ     string
	message string
}{
	{crudeimportdomain.ErrNotFound, http.StatusNotFound, "not_found", "not found"},
	{ErrNotFound, http.StatusNotFound, "not_found", "not found"},
	{ErrRateLimited, http.StatusTooManyRequests, "rate_limited", "too many write requests, retry later"},
	{ErrServiceUnavailable, http.StatusServiceUnavailable, "service_unavailable", "service unavailable"},
}

var internalErrorPayload = errorPayload{Type: "internal_error", Message: "internal server error"}

func mapError(err error) (int, errorPayload) {
	if err == nil {
		return http.StatusInternalServerError, internalErrorPayload
	}
	if fields := validationErrorsOf(err); len(fields) > 0 {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  fields,
		}
	}
	for _, class := range errorClasses {
		if errors.Is(err, class.target) {
			return class.status, errorPayload{Type: class.typ, Message: class.message}
		}
	}
	return http.StatusInternalServerError, internalErrorPayload
}

// validationErrorsOf returns the per-field errors carried by err, if any.
func validationErrorsOf(err error) []ValidationError {
	var vErr *ValidationErrors
	if errors.As(err, &vErr) && len(vErr.Errors) > 0 {
		return vErr.Errors
	}
	return collectValidationErrors(err, "")
}

// collectValidationErrors walks joined errors and emits one entry per known
// validation sentinel. Bulk item errors prefix the field with their position.
func collectValidationErrors(err error, prefix string) []ValidationError {
	switch e := err.(type) {
	case nil:
		return nil
	case interface{ Unwrap() []error }:
		var out []ValidationError
		for _, inner := range e.Unwrap() {
			out = append(out, collectValidationErrors(inner, prefix)...)
		}
		return out
	case *crudeimportdomain.BatchItemError:
		return collectValidationErrors(e.Err, fmt.Sprintf("%srecords[%d].", prefix, e.Index))
	}

	for sentinel, field := range validationFields {
		if !errors.Is(err, sentinel) {
			continue
		}
		message, ok := validationMessages[sentinel]
		if !ok {
			message = "required, must not be blank"
		}
		return []ValidationError{{
			Field:   prefix + field,
			Code:    sentinel.Error(),
			Message: message,
		}}
	}
	return nil
}

// classifyErrorForLog returns (error_type, error_code) for request logs.
func classifyErrorForLog(err error) (string, string) {
	if err == nil {
		return "", ""
	}
	if fields := validationErrorsOf(err); len(fields) > 0 {
		return "validation_error", fields[0].Code
	}
	if errors.Is(err, crudeimportdomain.ErrStorage) {
		return "storage_error", "storage_error"
	}
	status, payload := mapError(err)
	if status == http.StatusInternalServerError {
		return "internal_error", "internal_error"
	}
	return payload.Type, payload.Type
}
