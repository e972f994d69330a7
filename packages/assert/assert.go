// Package assert provides runtime tripwires for state that must never be reached.
// A failed assertion panics instead of returning an error.
package assert

import "fmt"

func OK(cond bool, format string, args ...any) {
	if !cond {
		panic(failedMsgf(format, args...))
	}
}

func failedMsgf(format string, args ...any) string {
	return fmt.Sprintln("assertion failed:", fmt.Sprintf(format, args...))
}
