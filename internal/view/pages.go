package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Heading renders the page heading as a templ component.
func Heading(text string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1 class="text-4xl font-extrabold mb-4">`); err != nil {
			return err
		}
		if _, err := io.WriteString(w, templ.EscapeString(text)); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</h1>`)
		return err
	})
}

// Page is a simple page body: a heading and a paragraph.
func Page(ctx context.Context, heading, body string) cmp.Node {
	return g.Div(
		g.Class("bg-white shadow rounded-xl p-10"),
		AdaptTemplToGomponent(ctx, Heading(heading)),
		g.P(g.Class("text-gray-700 leading-relaxed"), cmp.Text(body)),
	)
}
