package docnotes

import (
	"errors"
	"fmt"

	"braces.dev/errtrace"
)

// Kind selects which class of documentation is being read or written
// for an identifier:
// the documentation it carries as a callable (function or macro),
// or the documentation it carries as a variable.
//
// The two slots are fully independent.
// An identifier may hold text under both kinds at once.
type Kind int

const (
	// Callable is the documentation an identifier carries
	// when it is invoked.
	//
	// This is the zero value and the default.
	Callable Kind = iota

	// Variable is the documentation an identifier carries
	// for the value bound to it.
	Variable
)

var errUnknownKind = errors.New("unknown documentation kind")

// String returns the name of the kind as it appears in docset files.
func (k Kind) String() string {
	switch k {
	case Callable:
		return "callable"
	case Variable:
		return "variable"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converts the string representation of a documentation kind
// back into a [Kind].
// The empty string parses as [Callable].
func ParseKind(s string) (Kind, error) {
	switch s {
	case "", "callable":
		return Callable, nil
	case "variable":
		return Variable, nil
	default:
		return 0, errtrace.Wrap(fmt.Errorf("%w %q", errUnknownKind, s))
	}
}
