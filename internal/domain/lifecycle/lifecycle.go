// Package lifecycle holds shared process lifecycle settings.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks (DB ping, server shutdown).
const DefaultTimeout = 10 * time.Second
