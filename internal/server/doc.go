// Package server runs the HTTP transport of the fleet drivers API.
//
// It owns the http.Server lifecycle: startup, signal handling and graceful
// shutdown.
package server
