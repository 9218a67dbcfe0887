// Package lifecycle holds shared constants for fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single start or stop hook.
const DefaultTimeout = 10 * time.Second

// PassDrainTimeout bounds how long shutdown waits for an in-flight matching pass.
const PassDrainTimeout = 30 * time.Second
