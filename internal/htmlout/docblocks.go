package htmlout

import (
	"fmt"
	"html/template"
	"strings"
)

// block is a run of documentation text:
// either a prose paragraph or a tab-indented code block.
type block struct {
	code bool
	text string
}

// blocks splits documentation text into prose paragraphs
// and tab-indented code blocks.
// Blank lines separate paragraphs;
// consecutive tab-indented lines form one code block,
// with the leading tab stripped from each line.
func blocks(text string) []block {
	var (
		out   []block
		prose []string
		code  []string
	)
	flushProse := func() {
		if len(prose) > 0 {
			out = append(out, block{text: strings.Join(prose, " ")})
			prose = nil
		}
	}
	flushCode := func() {
		if len(code) > 0 {
			out = append(out, block{code: true, text: strings.Join(code, "\n")})
			code = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, "\t"):
			flushProse()
			code = append(code, strings.TrimPrefix(line, "\t"))
		case strings.TrimSpace(line) == "":
			// Blank lines inside a code block are kept
			// so that multi-stanza examples stay together.
			if len(code) > 0 {
				code = append(code, "")
				continue
			}
			flushProse()
		default:
			flushCode()
			prose = append(prose, strings.TrimSpace(line))
		}
	}
	flushProse()
	flushCode()

	// Trailing blank lines inside the last code block are noise.
	for i, blk := range out {
		if blk.code {
			out[i].text = strings.TrimRight(blk.text, "\n")
		}
	}
	return out
}

// linkify escapes a prose paragraph for HTML,
// turning bare http(s) URLs into anchor elements.
func linkify(text string) string {
	words := strings.Fields(text)
	for i, word := range words {
		// URLs inside prose often end with punctuation
		// that is not part of the link.
		trimmed := strings.TrimRight(word, ".,;:)")
		if strings.HasPrefix(trimmed, "https://") || strings.HasPrefix(trimmed, "http://") {
			url := template.HTMLEscapeString(trimmed)
			rest := template.HTMLEscapeString(word[len(trimmed):])
			words[i] = fmt.Sprintf(`<a href="%v">%v</a>%v`, url, url, rest)
		} else {
			words[i] = template.HTMLEscapeString(word)
		}
	}
	return strings.Join(words, " ")
}
