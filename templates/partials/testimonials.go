package partials

import (
	"strconv"

	"beta_law_site/services/showcase"
	"beta_law_site/templates/components"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	ShowcaseSlotID = "showcase-slot"
	showcaseTarget = "#" + ShowcaseSlotID
)

// Testimonials renders the section around the showcase. The slot is filled
// with ShowcaseSlide and re-filled by the controls and the change stream.
func Testimonials(state showcase.State) g.Node {
	return h.Section(
		h.ID("testimonials"),
		h.Class("py-20"),
		g.Attr("aria-labelledby", "testimonials-title"),

		h.Div(h.Class("container mx-auto px-4"),
			components.SectionHeading("testimonials-title", "לקוחות מספרים",
				"מה לקוחותינו מתעשיית המזון אומרים על השירות המשפטי שקיבלו ממשרד עורכי דין ביתא"),

			// Pointer enter pauses, pointer leave resumes. The two wrappers share one box.
			h.Div(
				h.Class("mx-auto max-w-4xl"),
				g.Attr("hx-ext", "sse"),
				g.Attr("sse-connect", "/showcase/stream"),
				g.Attr("hx-target", showcaseTarget),
				g.Attr("hx-swap", "innerHTML"),
				g.Attr("hx-post", "/showcase/pause"),
				g.Attr("hx-trigger", "mouseenter"),
				h.Div(
					g.Attr("hx-post", "/showcase/resume"),
					g.Attr("hx-trigger", "mouseleave"),
					h.Div(
						h.ID(ShowcaseSlotID),
						g.Attr("sse-swap", showcase.EventChanged),
						g.Attr("aria-roledescription", "carousel"),
						g.Attr("aria-label", "המלצות לקוחות"),
						ShowcaseSlide(state),
					),
				),
			),
		),
	)
}

// ShowcaseSlide renders the current item and its controls
func ShowcaseSlide(state showcase.State) g.Node {
	item := state.Current
	live := "off"
	if !state.AutoAdvancing {
		live = "polite"
	}

	return g.Group([]g.Node{
		h.Div(
			h.Class("testimonial-slide glassmorphism-card rounded-2xl p-8 md:p-12"),
			g.Attr("data-direction", state.Direction.String()),
			g.Attr("data-index", strconv.Itoa(state.Index)),
			g.Attr("role", "group"),
			g.Attr("aria-roledescription", "slide"),
			g.Attr("aria-live", live),
			g.Attr("aria-label", strconv.Itoa(state.Index+1)+" מתוך "+strconv.Itoa(state.Count)),

			components.Icon("quote", "mb-6 h-10 w-10 text-secondary"),
			g.El("blockquote", h.Class("mb-8 text-xl leading-relaxed text-gray-700 md:text-2xl"),
				h.P(g.Text(item.Quote)),
			),
			h.Div(h.Class("flex flex-col"),
				h.Strong(h.Class("text-lg text-primary"), g.Text(item.Name)),
				h.Span(h.Class("text-gray-500"), g.Text(item.Position+", "+item.Company)),
			),
		),

		h.Div(h.Class("mt-8 flex items-center justify-center gap-6"),
			showcaseArrow("/showcase/prev", "הקודם", "chevron-r"),
			h.Div(h.Class("flex items-center gap-2"), showcaseDots(state)),
			showcaseArrow("/showcase/next", "הבא", "chevron-l"),
		),

		h.P(
			h.Class("mt-4 flex items-center justify-center gap-2 text-sm text-gray-500"),
			g.Attr("data-auto", strconv.FormatBool(state.AutoAdvancing)),
			g.If(state.AutoAdvancing, g.Group([]g.Node{components.Icon("play", "h-3 w-3"), h.Span(g.Text("מתחלף אוטומטית"))})),
			g.If(!state.AutoAdvancing, g.Group([]g.Node{components.Icon("pause", "h-3 w-3"), h.Span(g.Text("מושהה"))})),
		),
	})
}

func showcaseArrow(path, label, icon string) g.Node {
	return h.Button(
		h.Type("button"),
		h.Class("neumorphic-button flex h-12 w-12 items-center justify-center rounded-full text-primary"),
		g.Attr("hx-post", path),
		g.Attr("hx-trigger", "click"),
		g.Attr("aria-label", label),
		components.Icon(icon, "h-6 w-6"),
	)
}

func showcaseDots(state showcase.State) g.Node {
	dots := make([]g.Node, 0, state.Count)
	for i := 0; i < state.Count; i++ {
		current := i == state.Index
		dots = append(dots, h.Button(
			h.Type("button"),
			components.ClassNames(
				"h-3 rounded-full transition-all duration-300",
				components.When(current, "w-8 bg-secondary"),
				components.When(!current, "w-3 bg-gray-300 hover:bg-gray-400"),
			),
			g.Attr("hx-post", "/showcase/select/"+strconv.Itoa(i)),
			g.Attr("hx-trigger", "click"),
			g.Attr("aria-label", "עבור לחוות דעת "+strconv.Itoa(i+1)),
			g.Attr("aria-current", strconv.FormatBool(current)),
		))
	}
	return g.Group(dots)
}
