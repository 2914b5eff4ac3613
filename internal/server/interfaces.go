package server

// Server defines the lifecycle contract for the transport servers managed
// by this package.
type Server interface {
	// Start binds the listeners and launches the serve loops in the
	// background. It returns as soon as the listeners are bound.
	Start() error

	// RunServer starts serving and blocks until SIGTERM, SIGINT or SIGQUIT
	// is received, then shuts down.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
