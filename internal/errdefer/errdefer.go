// Package errdefer helps run cleanup operations in a defer statement
// without losing the errors they return.
package errdefer

import (
	"errors"
	"io"
)

// Close closes the closer,
// joining its error, if any, into *err.
//
// Call it in a defer statement inside a function with a named error return:
//
//	func write(path string) (err error) {
//		f, err := os.Create(path)
//		if err != nil {
//			return err
//		}
//		defer errdefer.Close(&err, f)
//		// ...
//	}
func Close(err *error, closer io.Closer) {
	*err = errors.Join(*err, closer.Close())
}
