// Package lifecycle holds shared constants for application lifecycle management.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown work performed in lifecycle hooks.
const DefaultTimeout = 10 * time.Second
