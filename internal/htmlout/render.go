// Package htmlout renders an augmented docset
// into a standalone HTML page.
package htmlout

import (
	"embed"
	"html/template"
	"io"
	"strings"

	"braces.dev/errtrace"
	"go.abhg.dev/docnotes"
	"go.abhg.dev/docnotes/internal/docfile"
	"go.abhg.dev/docnotes/internal/highlight"
)

//go:embed tmpl/page.html
var _tmplFS embed.FS

// Parsed once at init with unusable function references,
// and cloned with the real functions at render time.
// This way, template validity is still verified at init.
var _pageTmpl = template.Must(
	template.New("page.html").
		Funcs((*render)(nil).FuncMap()).
		ParseFS(_tmplFS, "tmpl/page.html"),
)

// Highlighter renders code into HTML.
type Highlighter interface {
	Highlight(lang, src string) (string, error)
	WriteCSS(io.Writer) error
}

var _ Highlighter = (*highlight.Highlighter)(nil)

// Renderer renders a docset into a single HTML page,
// one section per entry,
// with example blocks in the documentation text
// highlighted as Go code.
type Renderer struct {
	// Title of the generated page.
	Title string

	// Highlighter used for example blocks. Required.
	Highlighter Highlighter
}

type pageInfo struct {
	Title   string
	CSS     template.CSS
	Entries []entryInfo
}

type entryInfo struct {
	Name   string
	Kind   string
	Anchor string
	Doc    string
}

// Render writes the page for the given docset to the writer.
func (r *Renderer) Render(w io.Writer, f *docfile.File) error {
	var css strings.Builder
	if err := r.Highlighter.WriteCSS(&css); err != nil {
		return errtrace.Wrap(err)
	}

	entries := make([]entryInfo, len(f.Entries))
	for i, e := range f.Entries {
		kind := e.DocKind()
		anchor := strings.ReplaceAll(e.Name, ".", "-")
		if kind != docnotes.Callable {
			anchor += "-" + kind.String()
		}
		entries[i] = entryInfo{
			Name:   e.Name,
			Kind:   kind.String(),
			Anchor: anchor,
			Doc:    e.Doc,
		}
	}

	tmpl := template.Must(_pageTmpl.Clone()).
		Funcs((&render{hl: r.Highlighter}).FuncMap())

	return errtrace.Wrap(tmpl.ExecuteTemplate(w, "page.html", pageInfo{
		Title:   r.Title,
		CSS:     template.CSS(css.String()),
		Entries: entries,
	}))
}

// render holds the state for a single Render call.
type render struct {
	hl Highlighter
}

// FuncMap is the list of functions provided to the templates.
func (r *render) FuncMap() template.FuncMap {
	return template.FuncMap{
		"doc": r.doc,
	}
}

// doc renders documentation text into HTML:
// prose paragraphs are escaped and bare URLs made clickable,
// tab-indented blocks are highlighted as Go code.
func (r *render) doc(text string) (template.HTML, error) {
	var out strings.Builder
	for _, blk := range blocks(text) {
		if blk.code {
			hl, err := r.hl.Highlight("go", blk.text)
			if err != nil {
				return "", errtrace.Wrap(err)
			}
			out.WriteString(`<pre class="chroma">`)
			out.WriteString(hl)
			out.WriteString("</pre>\n")
			continue
		}

		out.WriteString("<p>")
		out.WriteString(linkify(blk.text))
		out.WriteString("</p>\n")
	}
	return template.HTML(out.String()), nil
}
