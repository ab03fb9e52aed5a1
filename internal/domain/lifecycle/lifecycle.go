// Package lifecycle holds shared start/stop settings.
package lifecycle

import "time"

// DefaultTimeout bounds store pings and server shutdown.
const DefaultTimeout = 10 * time.Second
