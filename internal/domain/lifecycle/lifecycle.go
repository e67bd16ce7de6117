// Package lifecycle holds shared values for starting and stopping application components.
package lifecycle

import "time"

// DefaultTimeout bounds startup probes and graceful shutdown of servers and connections.
const DefaultTimeout = 10 * time.Second
