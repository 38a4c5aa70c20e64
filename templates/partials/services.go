package partials

import (
	"beta_law_site/models"
	"beta_law_site/templates/components"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func Services(areas []models.PracticeArea) g.Node {
	return h.Section(
		h.ID("services"),
		h.Class("py-20"),
		g.Attr("aria-labelledby", "services-title"),

		h.Div(h.Class("container mx-auto px-4"),
			components.SectionHeading("services-title", "השירותים המשפטיים שלנו",
				"משרד עורכי דין ביתא מתמחה במתן פתרונות משפטיים מקיפים לעסקים בתעשיית המזון"),
			h.Div(h.Class("grid gap-8 md:grid-cols-2 lg:grid-cols-3"),
				g.Map(areas, func(a models.PracticeArea) g.Node {
					return components.Card(components.CardProps{Variant: components.CardGlassmorphism},
						h.Div(h.Class("mb-4 inline-flex h-14 w-14 items-center justify-center rounded-full bg-secondary/15 text-secondary"),
							components.Icon(a.Icon, "h-7 w-7"),
						),
						h.H3(h.Class("mb-3 text-xl font-bold text-primary"), g.Text(a.Title)),
						h.P(h.Class("leading-relaxed"), g.Text(a.Description)),
					)
				}),
			),
		),
	)
}
