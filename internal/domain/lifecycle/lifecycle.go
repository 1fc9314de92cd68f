// Package lifecycle holds shared timeouts for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start and shutdown hooks so a stuck dependency
// cannot block process lifecycle indefinitely.
const DefaultTimeout = 10 * time.Second
