package flagvalue

import (
	"flag"
	"io"
	"os"

	"braces.dev/errtrace"
)

// FileSwitch is a flag that may be passed bare ("-x")
// or with a file name ("-x=log.txt").
// Create turns the recorded value into a writer.
type FileSwitch string

var _ flag.Getter = (*FileSwitch)(nil)

// Get returns the recorded path,
// or "-" if the flag was passed without a value.
func (fs *FileSwitch) Get() any { return string(*fs) }

// String returns the recorded path,
// or "-" if the flag was passed without a value.
func (fs *FileSwitch) String() string {
	return string(*fs)
}

// IsBoolFlag marks the flag as one that accepts a bare form.
func (*FileSwitch) IsBoolFlag() bool {
	return true
}

// Set records the value for this flag.
func (fs *FileSwitch) Set(v string) error {
	if v == "true" {
		// The bare form comes through as "true".
		v = "-"
	}
	*fs = FileSwitch(v)
	return nil
}

// Bool reports whether the flag was given at all.
func (fs *FileSwitch) Bool() bool {
	return len(*fs) > 0
}

// Create resolves the flag into a writer:
//
//   - flag not given: io.Discard
//   - flag given bare: the fallback writer
//   - flag given a file name: that file, created fresh
//
// The returned close function releases the file, if one was opened.
func (fs *FileSwitch) Create(fallback io.Writer) (w io.Writer, close func() error, err error) {
	switch *fs {
	case "":
		return io.Discard, nopClose, nil
	case "-":
		return fallback, nopClose, nil
	default:
		f, err := os.Create(string(*fs))
		if err != nil {
			return nil, nil, errtrace.Wrap(err)
		}
		return f, f.Close, nil
	}
}

func nopClose() error { return nil }
