// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, trace ids,
// HTTP response writing, JWT token generation and validation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// DriverIDCtxKey is the key under which the token middleware stores the
// driver id claim of an authenticated request.
//
//	ctx := context.WithValue(ctx, utils.DriverIDCtxKey, int64(42))
var DriverIDCtxKey = contextKey("driverID")

// GetDriverIDFromContext retrieves the authenticated driver id. ok is false
// when the value is missing or is not an int64.
func GetDriverIDFromContext(ctx context.Context) (int64, bool) {
	driverID, ok := ctx.Value(DriverIDCtxKey).(int64)
	return driverID, ok
}
