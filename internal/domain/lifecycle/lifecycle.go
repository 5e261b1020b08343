// Package lifecycle holds shared settings for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds each start or stop hook that talks to an external system.
const DefaultTimeout = 10 * time.Second
