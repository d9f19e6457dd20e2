// Package server provides the HTTP server for the activities signup service.
//
// the server is configured through environment variables
// (see internal/config/config.go for details)
//
// The package includes the handlers for
//   - the activities API (list, signup, unregister)
//   - common infrastructure handlers (health, version)
//
// middleware is in internal/server/middleware
package server
