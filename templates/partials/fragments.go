package partials

import (
	"beta_law_site/templates/components"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Fragment wraps a partial for an htmx swap
func Fragment(nodes ...g.Node) templ.Component {
	return components.View(g.Group(nodes))
}

// ErrorAlert is the fragment returned to htmx requests that failed
func ErrorAlert(message string) g.Node {
	return h.Div(
		g.Attr("role", "alert"),
		h.Class("rounded-xl border border-red-200 bg-red-50/70 px-4 py-3 text-sm font-medium text-red-700"),
		g.Text(message),
	)
}
