// Package lifecycle holds shared constants for component startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown of long-lived
// components such as HTTP servers and database pools.
const DefaultTimeout = 10 * time.Second
