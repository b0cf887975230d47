package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Creation errors
const (
	// ErrCodeConstructionFailed indicates a creation operation could not build its product.
	ErrCodeConstructionFailed ErrorCode = "CONSTRUCTION_FAILED"
	// ErrCodeUnknownVariant indicates no factory is bound to the requested variant.
	ErrCodeUnknownVariant ErrorCode = "UNKNOWN_VARIANT"
	// ErrCodeVariantMismatch indicates products of different variants were combined
	// under a policy that rejects it.
	ErrCodeVariantMismatch ErrorCode = "VARIANT_MISMATCH"
)

// Ownership errors
const (
	// ErrCodeAlreadyReleased indicates a handle was used or released after release.
	ErrCodeAlreadyReleased ErrorCode = "ALREADY_RELEASED"
	// ErrCodePoolClosed indicates an acquire on a closed pool.
	ErrCodePoolClosed ErrorCode = "POOL_CLOSED"
)

// Registry and configuration errors
const (
	// ErrCodeNotRegistered indicates a lookup of a name nobody registered.
	ErrCodeNotRegistered ErrorCode = "NOT_REGISTERED"
	// ErrCodeInvalidConfig indicates the configuration failed validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)
