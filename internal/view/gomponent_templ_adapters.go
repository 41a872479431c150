package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// templNode wraps a templ.Component so it can be placed in a gomponents tree.
type templNode struct {
	ctx       context.Context
	component templ.Component
}

// Render implements gomponents.Node. gomponents does not pass a context, so
// the one captured at adaptation time is used.
func (n *templNode) Render(w io.Writer) error {
	return n.component.Render(n.ctx, w)
}

// AdaptTemplToGomponent converts a templ.Component into a gomponents.Node
// rendered with ctx.
func AdaptTemplToGomponent(ctx context.Context, component templ.Component) gomponents.Node {
	return &templNode{ctx: ctx, component: component}
}

// AdaptGomponentToTempl converts a gomponents.Node into a templ.Component.
func AdaptGomponentToTempl(node gomponents.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return node.Render(w)
	})
}
