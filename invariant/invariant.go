// Package invariant gates debug-only assertions.
// Build with -tags debug to make violations panic; release builds skip the checks.
package invariant

import "fmt"

// Check panics with the formatted message when Enabled and ok is false
func Check(ok bool, format string, args ...any) {
	if !Enabled || ok {
		return
	}
	panic(fmt.Sprintf("invariant violated: "+format, args...))
}

// CheckErr panics with err when Enabled and err is non-nil
func CheckErr(err error) {
	if !Enabled || err == nil {
		return
	}
	panic(fmt.Sprintf("invariant violated: %v", err))
}
