package pages

import (
	"context"

	"beta_law_site/models"
	"beta_law_site/services/showcase"
	"beta_law_site/templates/partials"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Single-section pages behind the navigation links. They share the layout
// and leave room under the fixed navbar.

func About(ctx context.Context, props PageProps, stats []models.Statistic, team []models.TeamMember) templ.Component {
	return Page(ctx, props, sectionPage(partials.About(stats), partials.Team(team)))
}

func Services(ctx context.Context, props PageProps, areas []models.PracticeArea, state showcase.State) templ.Component {
	return Page(ctx, props, sectionPage(partials.Services(areas), partials.Testimonials(state)))
}

func Booking(ctx context.Context, props PageProps, form partials.BookingFormProps) templ.Component {
	return Page(ctx, props, sectionPage(partials.Booking(form)))
}

// BookingReceived is the full-page answer to a form posted without htmx
func BookingReceived(ctx context.Context, props PageProps, receipt *models.BookingReceipt) templ.Component {
	return Page(ctx, props, sectionPage(
		h.Div(h.Class("container mx-auto max-w-xl px-4 py-20"),
			h.Div(h.Class("neumorphic-card rounded-2xl p-8"), partials.BookingSuccess(receipt)),
		),
	))
}

func Contact(ctx context.Context, props PageProps) templ.Component {
	return Page(ctx, props, sectionPage(partials.Contact()))
}

// Error renders a full error page with a link home
// Error renders a full error page. Error pages are never indexed.
func Error(ctx context.Context, props PageProps, code int, message string) templ.Component {
	seo := models.DefaultSEO(models.FirmName, "")
	if props.SEO != nil {
		page := *props.SEO
		seo = &page
	}
	props.SEO = seo.WithNoIndex()

	return Page(ctx, props, sectionPage(
		h.Div(h.Class("container mx-auto flex min-h-[50vh] flex-col items-center justify-center px-4 text-center"),
			h.P(h.Class("mb-4 text-6xl font-extrabold text-secondary"), g.Textf("%d", code)),
			h.H1(h.Class("mb-6 text-2xl font-bold text-primary"), g.Text(message)),
			h.A(h.Href("/"), h.Class("font-semibold text-primary underline-offset-4 hover:underline"), g.Text("חזרה לדף הבית")),
		),
	))
}

func sectionPage(sections ...g.Node) g.Node {
	return h.Div(h.Class("pt-24"), g.Group(sections))
}
