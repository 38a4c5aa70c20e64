package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type CardVariant string

const (
	CardNeumorphic    CardVariant = "neumorphic"
	CardGlassmorphism CardVariant = "glassmorphism"
)

// CardProps configures Card. Image and Footer are optional.
type CardProps struct {
	Title    string
	Image    string
	ImageAlt string
	Variant  CardVariant
	Footer   g.Node
	Class    string
}

func Card(p CardProps, children ...g.Node) g.Node {
	surface := "neumorphic-card"
	if p.Variant == CardGlassmorphism {
		surface = "glassmorphism-card"
	}

	return h.Div(
		ClassNames("flex h-full w-full flex-col overflow-hidden rounded-xl transition-all duration-300 hover:scale-[1.02]", surface, p.Class),
		g.If(p.Image != "",
			h.Div(h.Class("relative aspect-video w-full overflow-hidden"),
				h.Img(
					h.Src(p.Image),
					h.Alt(p.ImageAlt),
					g.Attr("loading", "lazy"),
					h.Class("h-full w-full object-cover transition-transform duration-500 hover:scale-105"),
				),
			),
		),
		h.Div(h.Class("flex flex-grow flex-col p-6"),
			g.If(p.Title != "", h.H3(h.Class("mb-3 text-xl font-semibold text-primary"), g.Text(p.Title))),
			h.Div(h.Class("flex-grow text-gray-600"), g.Group(children)),
		),
		g.If(p.Footer != nil, h.Div(h.Class("mt-auto border-t border-gray-200 p-6 pt-4"), p.Footer)),
	)
}
