package common

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// datastarSrc is the client runtime driving SSE patches and signals.
const datastarSrc = "https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"

// Layout wraps a body component in the full HTML page.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<!doctype html>\n<html lang=\"en\">\n<head>\n")
		b.WriteString("<meta charset=\"utf-8\">\n")
		b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
		fmt.Fprintf(&b, "<title>%s - OSLens</title>\n", templ.EscapeString(title))
		b.WriteString("<link rel=\"stylesheet\" href=\"/static/app.css\">\n")
		fmt.Fprintf(&b, "<script type=\"module\" src=\"%s\"></script>\n", datastarSrc)
		b.WriteString("</head>\n<body>\n")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n</body>\n</html>\n")
		return err
	})
}

// AppShell renders the whole application view: sidebar with the upload form
// and model summary, filters, the catalog table, and the example panel. It
// is the morph target for SSE updates.
func AppShell(data AppData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<main id="app" class="ui-content" data-signals="{class: '', keyword: ''}" data-on-load="@get('/updates')">`)

		// Sidebar: upload + model summary
		b.WriteString(`<aside class="sidebar">`)
		b.WriteString(`<h1>OSLens</h1>`)
		b.WriteString(`<p>Upload an .osm model to view available methods for each object type.</p>`)
		b.WriteString(`<form id="upload-form" enctype="multipart/form-data" data-on-submit="@post('/upload', {contentType: 'form'})">`)
		b.WriteString(`<input type="file" name="model" accept=".osm" required>`)
		b.WriteString(`<label><input type="checkbox" name="translate" value="1" checked> Use version translator</label>`)
		b.WriteString(`<button type="submit">Load model</button>`)
		b.WriteString(`</form>`)
		b.WriteString(`<div id="upload-status"></div>`)

		if data.FileName != "" {
			fmt.Fprintf(&b, `<dl class="model-summary"><dt>File</dt><dd>%s</dd><dt>Schema</dt><dd>%s</dd><dt>Objects</dt><dd>%d</dd></dl>`,
				templ.EscapeString(data.FileName), templ.EscapeString(data.Version), data.ObjectCount)
		}
		b.WriteString(`</aside>`)

		// Content: filters, table, example
		b.WriteString(`<section class="content">`)
		if data.FileName == "" {
			b.WriteString(`<p class="hint">Upload an OpenStudio model (.osm) in the sidebar to begin.</p>`)
		} else {
			writeFilters(&b, data)
			if err := flushAndRender(ctx, w, &b, CatalogTable(data)); err != nil {
				return err
			}
			if err := flushAndRender(ctx, w, &b, ExamplePanel(data.Example)); err != nil {
				return err
			}
		}
		b.WriteString(`</section>`)
		b.WriteString(`</main>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeFilters(b *strings.Builder, data AppData) {
	b.WriteString(`<div class="filters">`)
	b.WriteString(`<select data-bind-class data-on-change="@get('/api/catalog'); @get('/api/example')">`)
	b.WriteString(`<option value="">All</option>`)
	for _, t := range data.TypeOptions {
		selected := ""
		if t == data.SelectedClass {
			selected = " selected"
		}
		fmt.Fprintf(b, `<option value="%s"%s>%s</option>`, templ.EscapeString(t), selected, templ.EscapeString(t))
	}
	b.WriteString(`</select>`)
	b.WriteString(`<input type="text" placeholder="Search methods by keyword (e.g. 'set')" data-bind-keyword data-on-input__debounce.300ms="@get('/api/catalog')">`)
	b.WriteString(`</div>`)
}

// CatalogTable renders the flattened rows table with the row count line.
func CatalogTable(data AppData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div id="catalog-table">`)
		fmt.Fprintf(&b, `<p class="row-count">Showing %d of %d rows.</p>`, len(data.Rows), data.TotalRows)

		if data.TotalRows == 0 {
			b.WriteString(`<p class="hint">No objects found in the model.</p>`)
		} else {
			b.WriteString(`<table><thead><tr><th>Object Type (Class)</th><th>Available Methods</th></tr></thead><tbody>`)
			for _, row := range data.Rows {
				fmt.Fprintf(&b, `<tr><td>%s</td><td>%s</td></tr>`,
					templ.EscapeString(row.ObjectType), templ.EscapeString(row.Method))
			}
			b.WriteString(`</tbody></table>`)
		}
		b.WriteString(`</div>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

// ExamplePanel renders one representative object, or a prompt when no type
// is selected.
func ExamplePanel(example *ExampleData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div id="example-panel">`)
		switch {
		case example == nil:
			b.WriteString(`<p class="hint">Select an Object Type (Class) from the filter to see an example object here.</p>`)
		case example.Error != "":
			fmt.Fprintf(&b, `<p class="error">%s</p>`, templ.EscapeString(example.Error))
		default:
			fmt.Fprintf(&b, `<h2>Selected Object Type: <code>%s</code></h2>`, templ.EscapeString(example.TypeName))
			name := example.Name
			if name == "" {
				name = "N/A (no name)"
			}
			fmt.Fprintf(&b, `<p><strong>Name:</strong> <code>%s</code></p>`, templ.EscapeString(name))
			b.WriteString(`<p><strong>Object Text (IDF Format):</strong></p>`)
			fmt.Fprintf(&b, `<pre><code>%s</code></pre>`, templ.EscapeString(example.Text))
		}
		b.WriteString(`</div>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

// StatusMessage renders the upload status line; kind is one of "info",
// "error", or "success".
func StatusMessage(kind, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div id="upload-status" class="status %s">%s</div>`,
			templ.EscapeString(kind), templ.EscapeString(message))
		return err
	})
}

// ProgressBar renders build progress while objects are analyzed.
func ProgressBar(processed, total int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<div id="upload-status" class="status info">Analyzing objects and collecting methods... <progress value="%d" max="%d"></progress> %d/%d</div>`,
			processed, total, processed, total)
		return err
	})
}

// flushAndRender writes buffered markup, renders a nested component, and
// resets the buffer.
func flushAndRender(ctx context.Context, w io.Writer, b *strings.Builder, c templ.Component) error {
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}
	b.Reset()
	return c.Render(ctx, w)
}
