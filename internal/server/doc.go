// Package server runs the bridge's transport servers.
//
// The RPC server always starts: it carries the gRPC health service and,
// unless disabled, the FabricBridge service. The status HTTP server starts
// only when an address is configured. Start is non-blocking; RunServer
// blocks until a termination signal and then shuts everything down
// gracefully.
package server
