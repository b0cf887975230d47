package errors

import (
	"fmt"
)

// AppError is the unified error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// Is reports whether target is an *AppError with the same code, so
// errors.Is(err, errors.New(ErrCodePoolClosed, "")) matches any pool-closed error.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// --- Common Error Constructors ---

// ConstructionFailed reports that a factory could not build the named product.
func ConstructionFailed(product string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeConstructionFailed,
		Message: fmt.Sprintf("failed to construct %s", product),
		Details: map[string]any{"product": product},
		Cause:   cause,
	}
}

// UnknownVariant reports that no factory exists for the variant.
func UnknownVariant(variant string) *AppError {
	return &AppError{
		Code:    ErrCodeUnknownVariant,
		Message: fmt.Sprintf("no factory bound to variant %q", variant),
		Details: map[string]any{"variant": variant},
	}
}

// VariantMismatch reports a cross-variant pairing that was rejected.
func VariantMismatch(want, got string) *AppError {
	return &AppError{
		Code:    ErrCodeVariantMismatch,
		Message: fmt.Sprintf("collaborator of variant %q cannot work with variant %q", got, want),
		Details: map[string]any{"want": want, "got": got},
	}
}

// AlreadyReleased reports use of a handle after its ownership ended.
func AlreadyReleased(id string) *AppError {
	return &AppError{
		Code:    ErrCodeAlreadyReleased,
		Message: "handle already released",
		Details: map[string]any{"handle_id": id},
	}
}

// PoolClosed reports an acquire against a closed pool.
func PoolClosed(pool string) *AppError {
	return &AppError{
		Code:    ErrCodePoolClosed,
		Message: fmt.Sprintf("pool %s is closed", pool),
		Details: map[string]any{"pool": pool},
	}
}

// NotRegistered reports a registry lookup that found nothing.
func NotRegistered(kind, name string) *AppError {
	return &AppError{
		Code:    ErrCodeNotRegistered,
		Message: fmt.Sprintf("%s %q not registered", kind, name),
		Details: map[string]any{"kind": kind, "name": name},
	}
}

// InvalidConfig reports a configuration validation failure.
func InvalidConfig(message string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidConfig,
		Message: message,
	}
}
