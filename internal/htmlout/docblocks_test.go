package htmlout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give string
		want []block
	}{
		{desc: "empty"},
		{
			desc: "single paragraph",
			give: "Hello world.",
			want: []block{{text: "Hello world."}},
		},
		{
			desc: "paragraphs",
			give: "First paragraph\nstill first.\n\nSecond.",
			want: []block{
				{text: "First paragraph still first."},
				{text: "Second."},
			},
		},
		{
			desc: "code block",
			give: "Example:\n\n\tx := 1\n\ty := 2\n\nDone.",
			want: []block{
				{text: "Example:"},
				{code: true, text: "x := 1\ny := 2"},
				{text: "Done."},
			},
		},
		{
			desc: "code block with blank line",
			give: "\tx := 1\n\n\ty := 2\n",
			want: []block{
				{code: true, text: "x := 1\n\ny := 2"},
			},
		},
		{
			desc: "trailing code block",
			give: "Text.\n\n\tx := 1\n",
			want: []block{
				{text: "Text."},
				{code: true, text: "x := 1"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, blocks(tt.give))
		})
	}
}

func TestLinkify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give string
		want string
	}{
		{
			desc: "no links",
			give: "plain text",
			want: "plain text",
		},
		{
			desc: "escapes html",
			give: "a < b & c",
			want: "a &lt; b &amp; c",
		},
		{
			desc: "bare url",
			give: "see https://go.dev/tour for more",
			want: `see <a href="https://go.dev/tour">https://go.dev/tour</a> for more`,
		},
		{
			desc: "url with trailing punctuation",
			give: "read https://go.dev/doc.",
			want: `read <a href="https://go.dev/doc">https://go.dev/doc</a>.`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, linkify(tt.give))
		})
	}
}
