// Package lifecycle holds shared timeouts for server start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of the delivery servers.
const DefaultTimeout = 10 * time.Second
