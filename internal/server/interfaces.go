package server

// Server is the lifecycle contract the entrypoint runs the backend through.
// RunServer blocks until shutdown has completed; Shutdown may be called from
// another goroutine to stop serving early.
type Server interface {
	RunServer()
	Shutdown()
}
