// Package title composes the text shown in a page's <title> element.
//
// A Composer holds the title set by a handler and appends a translated
// postfix (the application display name) when the title is read. Composers
// are owned by a single request; use WithComposer and FromContext to carry
// one through the rendering pipeline.
package title

import "context"

const (
	// PostfixKey is the message ID resolved for the title postfix.
	PostfixKey = "Super Application"

	// Delimiter separates the page title from the postfix.
	Delimiter = " - "
)

// Resolver maps a message key to display text. Implementations must be
// total: they always return a string for PostfixKey.
type Resolver interface {
	Resolve(key string) string
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(key string) string

// Resolve calls f(key).
func (f ResolverFunc) Resolve(key string) string {
	return f(key)
}

// Composer holds the current page title for one request.
// It is not safe for concurrent use.
type Composer struct {
	resolver Resolver
	title    string
}

// NewComposer creates a Composer with an empty title.
func NewComposer(r Resolver) *Composer {
	return &Composer{resolver: r}
}

// SetTitle overwrites the current title. The empty string clears it.
func (c *Composer) SetTitle(title string) {
	c.title = title
}

// Title returns the composed title: the postfix alone when no title is set,
// otherwise "<title> - <postfix>".
func (c *Composer) Title() string {
	return Compose(c.title, c.postfix())
}

// Raw returns the title as last set, without the postfix.
func (c *Composer) Raw() string {
	return c.title
}

func (c *Composer) postfix() string {
	return c.resolver.Resolve(PostfixKey)
}

// Compose joins title and postfix with Delimiter. An empty title yields the
// postfix unchanged.
func Compose(title, postfix string) string {
	if title == "" {
		return postfix
	}
	return title + Delimiter + postfix
}

type contextKey struct{}

// WithComposer returns a copy of ctx carrying c.
func WithComposer(ctx context.Context, c *Composer) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// FromContext returns the Composer stored in ctx, if any.
func FromContext(ctx context.Context) (*Composer, bool) {
	c, ok := ctx.Value(contextKey{}).(*Composer)
	return c, ok && c != nil
}
