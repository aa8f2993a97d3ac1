// Package server runs the local fake portal's HTTP server.
//
// It provides startup, signal handling, and graceful shutdown.
package server
