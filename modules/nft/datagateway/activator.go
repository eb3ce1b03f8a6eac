package datagateway

import "context"

// Activator is implemented by backends that need one-time warmup (opening
// connections, key loading) before first use. The orchestrator activates each
// backend at most once per process.
type Activator interface {
	Activate(ctx context.Context) error
}
