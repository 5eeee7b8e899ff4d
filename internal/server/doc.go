// Package server runs the schema gate's HTTP server.
//
// It owns the server lifecycle: startup, signal handling, and graceful
// shutdown.
package server
