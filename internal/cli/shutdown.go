package cli

import "github.com/example/fleetctl/internal/wire"

// Shutdown releases the shared database handle and flushes logs.
func Shutdown() {
	wire.Close()
}
