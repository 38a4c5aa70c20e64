package partials

import (
	"beta_law_site/models"
	"beta_law_site/templates/components"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func Team(members []models.TeamMember) g.Node {
	return h.Section(
		h.ID("team"),
		h.Class("py-20"),
		g.Attr("aria-labelledby", "team-title"),

		h.Div(h.Class("container mx-auto px-4"),
			components.SectionHeading("team-title", "הצוות המשפטי שלנו",
				"צוות עורכי הדין המוביל שלנו מתמחה בכל ההיבטים המשפטיים של תעשיית המזון, מרגולציה ותקינה ועד קניין רוחני והסכמים מסחריים."),
			h.Div(h.Class("grid gap-8 sm:grid-cols-2 lg:grid-cols-3"),
				g.Map(members, func(m models.TeamMember) g.Node {
					return components.Card(components.CardProps{
						Title:    m.Name,
						Image:    m.ImageURL,
						ImageAlt: m.Name,
					},
						h.P(h.Class("mb-1 font-semibold text-secondary"), g.Text(m.Role)),
						h.P(h.Class("mb-3 text-sm text-gray-500"), g.Text(m.Specialty)),
						h.P(h.Class("text-sm leading-relaxed"), g.Text(m.Bio)),
					)
				}),
			),
		),
	)
}
