package server

// Server defines the lifecycle contract of the fake portal server.
//
// Implementations block in [RunServer] until shutdown is requested and
// release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// It returns a non-nil error only if the listener failed.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
