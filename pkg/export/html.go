// Package export renders a document to HTML for the formatted preview pane.
// Rendering here is a boundary concern: the incremental core never depends
// on it, and CommonMark fidelity beyond goldmark's defaults is not a goal.
package export

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"

	"github.com/yaklabco/gomdedit/pkg/paragraph"
)

// HTML converts the full document to HTML.
func HTML(content []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := goldmark.New().Convert(content, &buf); err != nil {
		return nil, fmt.Errorf("render preview: %w", err)
	}
	return buf.Bytes(), nil
}

// HTMLWithActive renders the document in hybrid form: every paragraph is
// formatted except the active one, which is shown as raw Markdown source
// the way the editor presents the paragraph under the cursor.
func HTMLWithActive(content []byte, active int) ([]byte, error) {
	paras := paragraph.Split(string(content))
	if active < 0 || active >= len(paras) {
		return HTML(content)
	}

	var out bytes.Buffer
	if err := convertParagraphs(paras[:active], &out); err != nil {
		return nil, err
	}
	out.WriteString(`<pre class="active">`)
	out.WriteString(html.EscapeString(paras[active]))
	out.WriteString("</pre>\n")
	if err := convertParagraphs(paras[active+1:], &out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func convertParagraphs(paras []string, out *bytes.Buffer) error {
	if len(paras) == 0 {
		return nil
	}
	var src bytes.Buffer
	for _, p := range paras {
		src.WriteString(p)
		src.WriteByte('\n')
	}
	if err := goldmark.New().Convert(src.Bytes(), out); err != nil {
		return fmt.Errorf("render preview: %w", err)
	}
	return nil
}
