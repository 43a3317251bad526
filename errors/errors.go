package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode identifies an application error category on the wire
type ErrorCode string

// String returns the code as a string
func (c ErrorCode) String() string {
	return string(c)
}

const (
	ErrorCode_INTERNAL         ErrorCode = "INTERNAL"
	ErrorCode_INVALID_ARGUMENT ErrorCode = "INVALID_ARGUMENT"
	ErrorCode_NOT_FOUND        ErrorCode = "NOT_FOUND"

	ErrorCode_MEMBER_NOT_FOUND ErrorCode = "MEMBER_NOT_FOUND"
	ErrorCode_BILL_NOT_FOUND   ErrorCode = "BILL_NOT_FOUND"
	ErrorCode_SCORE_NOT_FOUND  ErrorCode = "SCORE_NOT_FOUND"
	ErrorCode_INVALID_METRIC   ErrorCode = "INVALID_METRIC"
	ErrorCode_DATA_UNAVAILABLE ErrorCode = "DATA_UNAVAILABLE"
	ErrorCode_RECALC_FAILED    ErrorCode = "RECALC_FAILED"

	ErrorCode_DB_CONNECTION_FAILED     ErrorCode = "DB_CONNECTION_FAILED"
	ErrorCode_DB_QUERY_FAILED          ErrorCode = "DB_QUERY_FAILED"
	ErrorCode_INTEGRATION_CACHE_FAILED ErrorCode = "INTEGRATION_CACHE_FAILED"
)

// AppError is the custom error type for the application
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the wrapped error for errors.Is/As
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

// Domain Errors
func ErrMemberNotFound(memberID string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_MEMBER_NOT_FOUND,
		Message:  "Member not found",
	}.WithDetail("member_id", memberID)
}

func ErrBillNotFound(billID string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_BILL_NOT_FOUND,
		Message:  "Bill not found",
	}.WithDetail("bill_id", billID)
}

func ErrScoreNotFound(memberID string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_SCORE_NOT_FOUND,
		Message:  "Activity score has not been computed for this member",
	}.WithDetail("member_id", memberID)
}

func ErrInvalidMetric(metric string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_METRIC,
		Message:  "Unknown ranking metric",
	}.WithDetail("metric", metric)
}

// ErrDataUnavailable is returned when an aggregate cannot be computed.
// A failed computation is reported as unavailable, never as zeros.
func ErrDataUnavailable(what string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusServiceUnavailable,
		Code:     ErrorCode_DATA_UNAVAILABLE,
		Message:  fmt.Sprintf("%s is temporarily unavailable", what),
	}
}

func ErrRecalcFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_RECALC_FAILED,
		Message:  "Recalculation failed",
	}
}

// Database Errors
func ErrDBConnectionFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_DB_CONNECTION_FAILED,
		Message:  "Database connection failed",
	}
}

func ErrDBQueryFailed(query string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_DB_QUERY_FAILED,
		Message:  "Database query failed",
	}.WithDetail("query", query)
}

func ErrCacheFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTEGRATION_CACHE_FAILED,
		Message:  fmt.Sprintf("Cache operation failed: %s", operation),
	}
}
