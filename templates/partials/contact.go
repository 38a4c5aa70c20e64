package partials

import (
	"beta_law_site/models"
	"beta_law_site/templates/components"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const mapImage = "https://images.unsplash.com/photo-1569336415962-a4bd9f69cd83?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80"

func Contact() g.Node {
	info := models.Contact

	return h.Section(
		h.ID("contact"),
		h.Class("py-20"),
		g.Attr("aria-labelledby", "contact-title"),

		h.Div(h.Class("container mx-auto px-4"),
			components.SectionHeading("contact-title", "צור קשר", ""),

			h.Div(h.Class("grid gap-8 md:grid-cols-2"),
				h.Div(h.Class("neumorphic-card rounded-2xl p-8"),
					h.H3(h.Class("mb-6 text-2xl font-bold text-primary"), g.Text("פרטי התקשרות")),
					contactRow("map-pin", "כתובת המשרד",
						h.A(h.Href(info.MapURL), g.Attr("target", "_blank"), h.Rel("noopener noreferrer"), h.Class("hover:text-secondary"), g.Text(info.Address)),
					),
					contactRow("phone", "טלפון",
						h.A(h.Href(info.PhoneHref), g.Attr("dir", "ltr"), h.Class("hover:text-secondary"), g.Text(info.Phone)),
					),
					contactRow("mail", "דוא\"ל",
						h.A(h.Href("mailto:"+info.Email), h.Class("hover:text-secondary"), g.Text(info.Email)),
					),
					contactRow("clock", "שעות פעילות",
						h.Ul(h.Class("space-y-1"),
							g.Map(info.Hours, func(bh models.BusinessHours) g.Node {
								return h.Li(h.Class("flex justify-between gap-4"),
									h.Span(g.Text(bh.Days)),
									h.Span(g.Attr("dir", "ltr"), g.Text(bh.Hours)),
								)
							}),
						),
					),
				),

				h.Div(h.Class("relative min-h-[320px] overflow-hidden rounded-2xl"),
					h.Img(h.Src(mapImage), h.Alt("מפת "+models.FirmName), g.Attr("loading", "lazy"), h.Class("absolute inset-0 h-full w-full object-cover")),
					h.Div(h.Class("glassmorphism absolute inset-x-4 bottom-4 rounded-xl p-6 text-white"),
						h.H3(h.Class("mb-2 text-2xl font-bold"), g.Text("בקרו אותנו")),
						h.P(g.Text(info.Address)),
					),
				),
			),

			h.Div(h.Class("mt-12 rounded-2xl bg-primary p-10 text-center text-white"),
				h.H3(h.Class("mb-4 text-2xl font-bold md:text-3xl"), g.Text("נשמח לעמוד לשירותכם")),
				h.P(h.Class("mb-8 text-lg"), g.Text("צוות המשרד שלנו מוכן לענות על כל שאלה ולסייע בכל נושא משפטי")),
				components.LinkButton(components.ButtonProps{Variant: components.ButtonSecondary, Size: components.ButtonLarge}, info.PhoneHref,
					components.Icon("phone", "h-5 w-5"),
					g.Text("התקשרו עכשיו"),
				),
			),
		),
	)
}

func contactRow(icon, title string, body g.Node) g.Node {
	return h.Div(h.Class("mb-6 flex gap-4"),
		h.Div(h.Class("flex h-12 w-12 shrink-0 items-center justify-center rounded-full bg-secondary/15 text-secondary"),
			components.Icon(icon, "h-6 w-6"),
		),
		h.Div(h.Class("flex-grow text-gray-700"),
			h.H4(h.Class("mb-1 text-lg font-bold"), g.Text(title)),
			body,
		),
	)
}
