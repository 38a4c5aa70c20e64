package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// SectionHeading renders the centered title, divider and lead paragraph used by every section
func SectionHeading(id, title, lead string) g.Node {
	return h.Div(h.Class("mb-12 text-center fade-up"),
		h.H2(
			g.If(id != "", h.ID(id)),
			h.Class("mb-4 text-3xl font-bold text-primary md:text-4xl"),
			g.Text(title),
		),
		h.Div(h.Class("neumorphic-divider mx-auto mb-6 h-1 w-24")),
		g.If(lead != "", h.P(h.Class("mx-auto max-w-3xl text-lg text-gray-600"), g.Text(lead))),
	)
}
