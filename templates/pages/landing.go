package pages

import (
	"context"

	"beta_law_site/models"
	"beta_law_site/services/showcase"
	"beta_law_site/templates/partials"

	"github.com/a-h/templ"
)

// LandingProps is the data of the one-page site
type LandingProps struct {
	Page          PageProps
	Statistics    []models.Statistic
	PracticeAreas []models.PracticeArea
	Team          []models.TeamMember
	Showcase      showcase.State
	Booking       partials.BookingFormProps
}

// Landing composes every section in page order
func Landing(ctx context.Context, props LandingProps) templ.Component {
	return Page(ctx, props.Page,
		partials.Hero(),
		partials.About(props.Statistics),
		partials.Services(props.PracticeAreas),
		partials.Booking(props.Booking),
		partials.Testimonials(props.Showcase),
		partials.Team(props.Team),
		partials.Contact(),
	)
}
