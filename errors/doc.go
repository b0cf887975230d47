// Package errors provides the unified error type for creational.
// Every failure surfaced by a factory, handle, pool or registry is an
// *AppError carrying a machine-readable ErrorCode, so callers can branch on
// the code instead of matching message text.
package errors
