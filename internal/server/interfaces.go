package server

// Server is the lifecycle contract of the transport server running the
// registration and asset endpoints.
//
// RunServer blocks until a stop signal arrives and the listener has
// drained; Shutdown stops accepting new connections and releases resources.
type Server interface {
	// RunServer starts serving requests and blocks until shutdown completes.
	RunServer()

	// Shutdown gracefully stops the server.
	Shutdown()
}
