package partials

import (
	"strconv"

	"beta_law_site/models"
	"beta_law_site/templates/components"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const aboutImage = "https://images.unsplash.com/photo-1589829545856-d10d557cf95f?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80"

// About renders the firm introduction followed by the statistics strip
func About(stats []models.Statistic) g.Node {
	return h.Section(
		h.ID("about"),
		h.Class("py-20"),
		g.Attr("aria-labelledby", "about-title"),

		h.Div(h.Class("container mx-auto px-4"),
			h.Div(h.Class("grid items-center gap-12 md:grid-cols-2"),
				h.Div(h.Class("neumorphic-card fade-up overflow-hidden rounded-2xl"),
					h.Img(
						h.Src(aboutImage),
						h.Alt(models.FirmName+" - מומחים בתעשיית המזון"),
						g.Attr("loading", "lazy"),
						h.Class("h-full w-full object-cover"),
					),
				),
				h.Div(h.Class("fade-up"),
					h.H2(h.ID("about-title"), h.Class("mb-6 text-3xl font-bold text-primary md:text-4xl"),
						g.Text("אודות "+models.FirmName),
					),
					h.P(h.Class("mb-4 text-lg leading-relaxed text-gray-700"),
						g.Text("משרד עורכי דין ביתא מתמחה בייעוץ משפטי לחברות בתעשיית המזון והמשקאות. עם ניסיון של למעלה מ-15 שנה, אנו מספקים פתרונות משפטיים מקיפים המותאמים לצרכים הייחודיים של עסקים בתחום המזון."),
					),
					h.P(h.Class("mb-6 text-lg leading-relaxed text-gray-700"),
						g.Text("הצוות המקצועי שלנו מורכב ממומחים בתחומי הרגולציה, בטיחות מזון, קניין רוחני, חוזים מסחריים וליטיגציה. אנו מלווים את לקוחותינו בכל שלב, מהקמת העסק ועד לפתרון סכסוכים מורכבים."),
					),
					h.Ul(h.Class("mb-8 flex flex-wrap gap-3"),
						g.Map(models.FocusAreas, func(area string) g.Node {
							return h.Li(h.Class("neumorphic-card flex items-center gap-2 rounded-full px-4 py-2 text-primary"),
								components.Icon("check", "h-4 w-4 text-secondary"),
								h.Span(g.Text(area)),
							)
						}),
					),
					components.LinkButton(components.ButtonProps{Variant: components.ButtonOutline}, "/contact", g.Text("צור קשר לייעוץ")),
				),
			),

			g.If(len(stats) > 0,
				h.Div(h.Class("mt-20"),
					h.H3(h.Class("mb-10 text-center text-2xl font-bold text-primary"), g.Text("המספרים מדברים בעד עצמם")),
					h.Div(h.Class("grid grid-cols-2 gap-6 md:grid-cols-4"),
						g.Map(stats, statCard),
					),
				),
			),
		),
	)
}

func statCard(s models.Statistic) g.Node {
	return h.Div(h.Class("neumorphic-card rounded-xl p-6 text-center"),
		h.Div(h.Class("mb-2 text-4xl font-extrabold text-secondary"),
			g.Text(strconv.Itoa(s.Value)+s.Suffix),
		),
		h.Div(h.Class("font-medium text-gray-600"), g.Text(s.Label)),
	)
}
