// Package must asserts invariants that the program cannot recover from.
// A violated invariant panics.
package must

import "fmt"

// NotErrorf panics if err is not nil.
// The printf-style message gives context for the failure.
func NotErrorf(err error, format string, args ...any) {
	if err != nil {
		panic(fmt.Sprintf("unexpected error: %v\n%v", err, fmt.Sprintf(format, args...)))
	}
}
