package partials

import (
	"beta_law_site/models"
	"beta_law_site/templates/components"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const heroImage = "https://images.unsplash.com/photo-1589829545856-d10d557cf95f?ixlib=rb-4.0.3&auto=format&fit=crop&w=2070&q=80"

func Hero() g.Node {
	return h.Section(
		h.ID("hero"),
		h.Class("relative flex min-h-screen items-center overflow-hidden pt-24"),
		g.Attr("aria-labelledby", "hero-title"),

		h.Div(h.Class("absolute inset-0 -z-10"),
			h.Img(h.Src(heroImage), h.Alt(models.FirmName), h.Class("h-full w-full object-cover")),
			h.Div(h.Class("absolute inset-0 bg-gradient-to-l from-primary/90 to-primary/60")),
		),

		h.Div(h.Class("container mx-auto grid items-center gap-12 px-4 md:grid-cols-2"),
			h.Div(h.Class("fade-up text-white"),
				h.H1(h.ID("hero-title"), h.Class("mb-6 text-4xl font-extrabold leading-tight md:text-6xl"),
					g.Text("משרד עורכי דין מוביל "),
					h.Span(h.Class("text-secondary"), g.Text("בישראל")),
				),
				h.P(h.Class("mb-8 text-xl text-white/90 md:text-2xl"), g.Text("חווית לקוח מושלמת בכל ביקור")),
				components.LinkButton(components.ButtonProps{Variant: components.ButtonSecondary, Size: components.ButtonLarge}, "/booking",
					g.Text("קבע תור עכשיו"),
				),
			),

			h.Div(h.Class("glassmorphism fade-up rounded-2xl p-8"),
				h.H3(h.Class("mb-6 text-2xl font-bold text-white"), g.Text(models.FirmName)),
				h.Ul(h.Class("space-y-4"),
					g.Map(models.Highlights, func(item string) g.Node {
						return h.Li(h.Class("flex items-center gap-3 text-lg text-white"),
							components.Icon("check", "h-5 w-5 text-secondary"),
							h.Span(g.Text(item)),
						)
					}),
				),
				h.A(h.Href("/about"), h.Class("mt-8 inline-block font-semibold text-secondary underline-offset-4 hover:underline"),
					g.Text("למידע נוסף"),
				),
			),
		),
	)
}
