// Package flagvalue provides flag.Value implementations
// used by the docnotes CLI.
package flagvalue

import "flag"

// Getter constrains a type parameter to pointer types
// that implement flag.Getter.
type Getter[T any] interface {
	*T
	flag.Getter
}
