package partials

import (
	"beta_law_site/models"
	"beta_law_site/templates/components"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const mobileMenuID = "mobile-menu"

// Navbar renders the fixed top navigation. currentPath marks the active link.
func Navbar(currentPath string) g.Node {
	return g.El("header", h.Class("glassmorphism fixed inset-x-0 top-0 z-50"),
		h.Nav(
			h.Class("container mx-auto flex items-center justify-between px-4 py-4"),
			g.Attr("aria-label", "ניווט ראשי"),

			h.A(h.Href("/"), h.Class("flex items-center gap-3 text-xl font-bold text-primary"),
				components.Icon(models.IconScale, "h-8 w-8 text-secondary"),
				h.Span(g.Text(models.FirmName)),
			),

			h.Ul(h.Class("hidden items-center gap-8 md:flex"),
				navItems(currentPath, "text-gray-700 hover:text-secondary transition-colors duration-300 font-medium"),
			),

			h.Div(h.Class("hidden md:block"),
				components.LinkButton(components.ButtonProps{Size: components.ButtonSmall}, "/booking", g.Text("קבע תור עכשיו")),
			),

			h.Button(
				h.Type("button"),
				h.Class("rounded-lg p-2 text-primary md:hidden"),
				g.Attr("data-menu-toggle", mobileMenuID),
				g.Attr("aria-controls", mobileMenuID),
				g.Attr("aria-expanded", "false"),
				g.Attr("aria-label", "פתח תפריט"),
				components.Icon("menu", "h-6 w-6"),
			),
		),

		h.Div(h.ID(mobileMenuID), h.Class("hidden border-t border-white/30 px-4 pb-6 md:hidden"),
			h.Ul(h.Class("flex flex-col gap-4 pt-4"),
				navItems(currentPath, "block text-lg text-gray-700 hover:text-secondary"),
			),
			h.Div(h.Class("pt-4"),
				components.LinkButton(components.ButtonProps{FullWidth: true}, "/booking", g.Text("קבע תור עכשיו")),
			),
		),
	)
}

func navItems(currentPath, linkClass string) g.Node {
	return g.Map(models.NavLinks, func(l models.NavLink) g.Node {
		active := l.Href == currentPath
		return h.Li(
			h.A(
				h.Href(l.Href),
				components.ClassNames(linkClass, components.When(active, "text-secondary font-bold")),
				g.If(active, g.Attr("aria-current", "page")),
				g.Text(l.Title),
			),
		)
	})
}
