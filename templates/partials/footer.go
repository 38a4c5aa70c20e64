package partials

import (
	"strconv"

	"beta_law_site/models"
	"beta_law_site/templates/components"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Footer renders the site footer; year is printed in the copyright line
func Footer(year int) g.Node {
	info := models.Contact

	return h.Footer(h.Class("glassmorphism mt-20 pt-16"),
		h.Div(h.Class("container mx-auto grid gap-10 px-4 pb-12 md:grid-cols-3"),
			h.Div(
				h.H2(h.Class("mb-4 text-2xl font-bold text-gray-800"), g.Text(models.FirmName)),
				h.P(h.Class("mb-6 text-gray-600"),
					g.Text("אנו מספקים ייעוץ משפטי מקצועי ואיכותי בתחומים מגוונים, תוך שימת דגש על יחס אישי ומסירות לכל לקוח."),
				),
				h.Ul(h.Class("flex gap-3"),
					g.Map(models.SocialLinks, func(s models.SocialLink) g.Node {
						return h.Li(
							h.A(
								h.Href(s.Href),
								g.Attr("target", "_blank"),
								h.Rel("noopener noreferrer"),
								g.Attr("aria-label", s.Label),
								h.Class("neumorphic-button flex h-10 w-10 items-center justify-center rounded-full text-primary hover:text-secondary"),
								components.Icon(s.Icon, "h-5 w-5"),
							),
						)
					}),
				),
			),

			h.Nav(g.Attr("aria-label", "ניווט מהיר"),
				h.H3(h.Class("mb-4 text-xl font-bold text-gray-800"), g.Text("ניווט מהיר")),
				h.Ul(h.Class("space-y-2"),
					g.Map(models.FooterLinks, func(l models.NavLink) g.Node {
						return h.Li(h.A(h.Href(l.Href), h.Class("text-gray-600 hover:text-secondary"), g.Text(l.Title)))
					}),
				),
			),

			h.Div(
				h.H3(h.Class("mb-4 text-xl font-bold text-gray-800"), g.Text("צור קשר")),
				h.Ul(h.Class("space-y-3 text-gray-600"),
					h.Li(h.Class("flex items-center gap-2"), components.Icon("map-pin", "h-4 w-4 text-secondary"),
						h.A(h.Href(info.MapURL), g.Attr("target", "_blank"), h.Rel("noopener noreferrer"), g.Text(info.Address)),
					),
					h.Li(h.Class("flex items-center gap-2"), components.Icon("phone", "h-4 w-4 text-secondary"),
						h.A(h.Href(info.PhoneHref), g.Attr("dir", "ltr"), g.Text(info.Phone)),
					),
					h.Li(h.Class("flex items-center gap-2"), components.Icon("mail", "h-4 w-4 text-secondary"),
						h.A(h.Href("mailto:"+info.Email), g.Text(info.Email)),
					),
				),
			),
		),

		h.Div(h.Class("border-t border-gray-200 py-6 text-center text-sm text-gray-500"),
			g.Text("© "+strconv.Itoa(year)+" "+models.FirmName+". כל הזכויות שמורות."),
		),
	)
}
