// Package components holds the reusable building blocks of the site's views.
package components

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// View adapts a gomponents node to templ.Component so handlers render every
// view the same way.
func View(node g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return node.Render(w)
	})
}

// ClassNames builds a class attribute from the non-empty names
func ClassNames(names ...string) g.Node {
	parts := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			parts = append(parts, n)
		}
	}
	return h.Class(strings.Join(parts, " "))
}

// When returns name if cond holds, for use with ClassNames
func When(cond bool, name string) string {
	if cond {
		return name
	}
	return ""
}
