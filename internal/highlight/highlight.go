// Package highlight renders code blocks into HTML
// with syntax highlighting.
package highlight

import (
	"bytes"
	"io"
	"sync"

	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultStyle is the chroma style used
// when a Highlighter does not specify one.
const DefaultStyle = "github"

// Highlighter turns source code into HTML.
type Highlighter struct {
	// Style used for syntax highlighting.
	// Defaults to [DefaultStyle].
	Style *chroma.Style

	// UseClasses specifies whether the highlighter
	// emits class attributes for highlighting
	// instead of inline style attributes.
	// Output produced with classes needs the style sheet
	// written by WriteCSS alongside it.
	UseClasses bool

	once      sync.Once
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

func (h *Highlighter) init() {
	h.once.Do(func() {
		h.style = h.Style
		if h.style == nil {
			h.style = styles.Get(DefaultStyle)
		}
		h.formatter = chromahtml.New(
			chromahtml.PreventSurroundingPre(true),
			chromahtml.WithClasses(h.UseClasses),
		)
	})
}

// WriteCSS writes the style classes for this highlighter to the writer.
// If the highlighter is not using classes, WriteCSS is a no-op.
func (h *Highlighter) WriteCSS(w io.Writer) error {
	h.init()

	if !h.UseClasses {
		return nil
	}
	return errtrace.Wrap(h.formatter.WriteCSS(w, h.style))
}

// Highlight renders src into HTML
// using the lexer registered for the given language.
// Languages without a registered lexer render as plain text.
//
// The output does not include the surrounding <pre> element.
func (h *Highlighter) Highlight(lang, src string) (string, error) {
	h.init()

	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}

	tokens, err := chroma.Coalesce(lexer).Tokenise(nil, src)
	if err != nil {
		return "", errtrace.Wrap(err)
	}

	var buff bytes.Buffer
	if err := h.formatter.Format(&buff, h.style, tokens); err != nil {
		return "", errtrace.Wrap(err)
	}
	return buff.String(), nil
}
