package iotest

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeT struct {
	*testing.T

	buff bytes.Buffer
}

func (t *fakeT) Logf(msg string, args ...any) {
	fmt.Fprintf(&t.buff, msg, args...)
	fmt.Fprintln(&t.buff)
}

func TestWriter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give string
		want string
	}{
		{desc: "plain", give: "foo", want: "foo\n"},
		{desc: "trailing newline", give: "foo\n", want: "foo\n"},
		{desc: "multiline", give: "foo\nbar\n", want: "foo\nbar\n"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			fake := fakeT{T: t}
			_, err := io.WriteString(Writer(&fake), tt.give)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, fake.buff.String())
		})
	}
}
