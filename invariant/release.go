//go:build !debug

package invariant

// Enabled is false in release builds
const Enabled = false
