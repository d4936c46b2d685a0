// Package errors defines application-level errors carrying an HTTP status,
// a business error code, and an Arabic user-facing message.
package errors

import (
	"net/http"

	"turriva/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"لم يتم العثور على المستخدم",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"هذا البريد الإلكتروني مسجل مسبقاً",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"البريد الإلكتروني أو كلمة المرور غير صحيحة",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"تعذرت معالجة كلمة المرور",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"كلمة المرور ضعيفة، يجب أن لا تقل عن ثمانية أحرف",
		"",
	)

	// Session-related errors
	ErrSessionNotFound = NewBaseError(
		http.StatusNotFound,
		"SESSION_NOT_FOUND",
		"الجلسة غير موجودة أو منتهية",
		"",
	)

	// Studio-related errors
	ErrNoImageSelected = NewBaseError(
		http.StatusBadRequest,
		"NO_IMAGE_SELECTED",
		"الرجاء اختيار صورة للغرفة أولاً",
		"",
	)

	ErrGenerationInFlight = NewBaseError(
		http.StatusConflict,
		"GENERATION_IN_FLIGHT",
		"هناك عملية توليد جارية بالفعل لهذه الجلسة",
		"",
	)

	// Vendor-related errors
	ErrVendorWithoutStore = NewBaseError(
		http.StatusConflict,
		"VENDOR_WITHOUT_STORE",
		"لا يوجد متجر مرتبط بهذا الحساب",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"بيانات الإدخال غير صالحة",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"عذراً، حدث خطأ ما. حاول مرة أخرى",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"ليست لديك صلاحية الوصول",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"لم يتم العثور على العنصر المطلوب",
		"",
	)
)
