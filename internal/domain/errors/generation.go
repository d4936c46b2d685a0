package errors

import (
	"net/http"

	"turriva/internal/errors"
)

// GenerationKind classifies a failed image generation. Callers branch on the
// kind rather than matching substrings of provider error text.
type GenerationKind string

const (
	GenerationPermissionDenied GenerationKind = "permission_denied"
	GenerationTimeout          GenerationKind = "timeout"
	GenerationNetwork          GenerationKind = "network"
	GenerationInvalidResponse  GenerationKind = "invalid_response"
	GenerationUnknown          GenerationKind = "unknown"
)

var generationKindInfo = map[GenerationKind]struct {
	httpCode  int
	errorCode string
	message   string
}{
	GenerationPermissionDenied: {
		http.StatusForbidden,
		"GENERATION_PERMISSION_DENIED",
		"تم رفض الإذن. جرّب إيقاف الوضع الاحترافي أو اختيار مفتاح صالح",
	},
	GenerationTimeout: {
		http.StatusGatewayTimeout,
		"GENERATION_TIMEOUT",
		"انتهت مهلة توليد التصميم، حاول مرة أخرى",
	},
	GenerationNetwork: {
		http.StatusBadGateway,
		"GENERATION_NETWORK",
		"تعذر الاتصال بخدمة التوليد",
	},
	GenerationInvalidResponse: {
		http.StatusBadGateway,
		"GENERATION_INVALID_RESPONSE",
		"لم يتم توليد صورة، حاول مرة أخرى",
	},
	GenerationUnknown: {
		http.StatusInternalServerError,
		"GENERATION_FAILED",
		"عذراً، تعذر توليد التصميم. حاول مرة أخرى",
	},
}

// GenerationError wraps an image generation failure with its kind,
// implementing the AppError interface.
type GenerationError struct {
	kind GenerationKind
	err  error
}

// NewGenerationError creates a generation error of the given kind. An
// unrecognized kind is normalized to GenerationUnknown.
func NewGenerationError(kind GenerationKind, err error) *GenerationError {
	if _, ok := generationKindInfo[kind]; !ok {
		kind = GenerationUnknown
	}

	return &GenerationError{kind: kind, err: err}
}

// Kind returns the failure classification.
func (e *GenerationError) Kind() GenerationKind {
	return e.kind
}

// Error implements the error interface
func (e *GenerationError) Error() string {
	if e.err != nil {
		return errors.Wrap(e.err, "generation failed ("+string(e.kind)+")").Error()
	}

	return "generation failed (" + string(e.kind) + ")"
}

// Unwrap returns the underlying provider error.
func (e *GenerationError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *GenerationError) HTTPCode() int {
	return generationKindInfo[e.kind].httpCode
}

// ErrorCode returns the business error code
func (e *GenerationError) ErrorCode() string {
	return generationKindInfo[e.kind].errorCode
}

// Message returns the user-friendly error message
func (e *GenerationError) Message() string {
	return generationKindInfo[e.kind].message
}

// Details returns detailed error information
func (e *GenerationError) Details() string {
	if e.err != nil {
		return e.err.Error()
	}

	return ""
}

// GenerationKindOf extracts the kind from an error tree. Errors that are not
// generation errors report GenerationUnknown.
func GenerationKindOf(err error) GenerationKind {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr.Kind()
	}

	return GenerationUnknown
}
