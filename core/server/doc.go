// Package server holds the HTTP server configuration.
//
// The Fiber application itself is assembled in cmd/start.go; this package
// only carries the settings (listen port, API key) so core/config can bind
// them from the environment.
package server
