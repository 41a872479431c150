// Package view holds the page layout and the page bodies rendered inside it.
package view

import (
	cmp "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// NavLink is one entry in the layout's navigation bar.
type NavLink struct {
	Href  string
	Label string
}

// LayoutProps are the values the Base layout needs besides the page body.
type LayoutProps struct {
	// Title is the fully composed document title.
	Title string
	// Lang is the BCP 47 tag of the response language.
	Lang  string
	Nav   []NavLink
	Langs []NavLink
}

// Base wraps content in the HTML5 document shared by every page.
func Base(p LayoutProps, content ...cmp.Node) cmp.Node {
	return components.HTML5(components.HTML5Props{
		Title:    p.Title,
		Language: p.Lang,
		Head: []cmp.Node{
			g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
			g.Script(g.Src("https://unpkg.com/htmx.org@2.0.4"), g.Defer()),
		},
		Body: []cmp.Node{
			g.Nav(
				g.Class("flex gap-4 p-4 border-b"),
				cmp.Map(p.Nav, func(l NavLink) cmp.Node {
					return g.A(g.Href(l.Href), cmp.Text(l.Label))
				}),
				g.Span(
					g.Class("ml-auto flex gap-2 text-sm"),
					cmp.Map(p.Langs, func(l NavLink) cmp.Node {
						return g.A(g.Href(l.Href), cmp.Text(l.Label))
					}),
				),
			),
			g.Main(
				hx.Boost("true"),
				g.Class("container mx-auto p-8"),
				cmp.Group(content),
			),
		},
	})
}
