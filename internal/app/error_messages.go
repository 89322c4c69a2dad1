// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// fleet drivers HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies. Keeping them in one place ensures consistent wording
// throughout the API.
package app

const (
	// MsgInvalidAPIKey is returned when the API key header is missing or
	// does not match any configured key.
	MsgInvalidAPIKey = "Invalid API key."

	// MsgUnauthorized is returned when a bearer token cannot be verified.
	MsgUnauthorized = "Unauthorized"

	// MsgTokenIsExpired is returned when a bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal Server Error"

	// MsgUnableToCreateDriver replaces MsgInternalServerError on create.
	MsgUnableToCreateDriver = "Unable to create driver"

	// MsgDriverNotFound is returned when an update, delete or token request
	// targets a driver id that has no row.
	MsgDriverNotFound = "Driver not found"

	// MsgRequestEntityTooLarge is returned when a request body exceeds the
	// size limit.
	MsgRequestEntityTooLarge = "request entity too large"

	MsgDriverUpdated = "Driver updated successfully"
	MsgDriverDeleted = "Driver deleted successfully"
)
