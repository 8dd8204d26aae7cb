package sink

import (
	"bytes"
	"fmt"
	"html"

	"github.com/protoviz/breadboard/pkg/board"
	boardio "github.com/protoviz/breadboard/pkg/io"
	"github.com/protoviz/breadboard/pkg/render/diagram"
)

// HTMLOption configures the preview page.
type HTMLOption func(*htmlRenderer)

type htmlRenderer struct {
	title string
}

// WithTitle overrides the page heading.
func WithTitle(title string) HTMLOption {
	return func(r *htmlRenderer) { r.title = title }
}

// RenderHTML produces the standalone preview page: a styled card
// containing the board SVG followed by the layout document rendered as
// readable, indented JSON.
func RenderHTML(d diagram.Drawing, doc board.Document, opts ...HTMLOption) ([]byte, error) {
	r := htmlRenderer{
		title: fmt.Sprintf("Breadboard Preview (%d columns)", doc.Board.Columns),
	}
	for _, opt := range opts {
		opt(&r)
	}

	layoutJSON, err := boardio.MarshalJSON(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal layout: %w", err)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<!doctype html>
<html><head><meta charset="utf-8">
<title>Breadboard Preview</title>
<style>
  body { background:#eef1f5; margin:0; font-family:ui-sans-serif,system-ui; }
  .wrap { max-width:%.0fpx; margin:24px auto; padding:12px; }
  .card { background:#fff; border-radius:12px; box-shadow:0 8px 28px rgba(0,0,0,.08); padding:16px; }
  pre { background:#f7f7f7; border-radius:8px; padding:12px; overflow:auto; }
</style></head>
<body>
  <div class="wrap">
    <div class="card">
      <h2 style="margin:0 0 12px 0">%s</h2>
`, d.Width, html.EscapeString(r.title))

	buf.Write(RenderSVG(d))

	fmt.Fprintf(&buf, `      <h3>Layout JSON</h3>
      <pre>%s</pre>
    </div>
  </div>
</body></html>
`, html.EscapeString(string(layoutJSON)))

	return buf.Bytes(), nil
}
