package partials

import (
	"beta_law_site/middleware"
	"beta_law_site/models"
	"beta_law_site/templates/components"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	BookingPanelID = "booking-panel"
	bookingImage   = "https://images.unsplash.com/photo-1521791136064-7986c2920216?ixlib=rb-4.0.3&auto=format&fit=crop&w=1169&q=80"
)

// BookingFormProps carries what the booking form needs to (re)render
type BookingFormProps struct {
	CSRFToken        string
	Values           models.BookingRequest
	Errors           models.FieldErrors
	Alert            string
	TurnstileSiteKey string
}

// Booking renders the consultation section with the form in its swappable panel
func Booking(props BookingFormProps) g.Node {
	return h.Section(
		h.ID("booking"),
		h.Class("py-20"),
		g.Attr("aria-labelledby", "booking-title"),

		h.Div(h.Class("container mx-auto px-4"),
			components.SectionHeading("booking-title", "קבע פגישת ייעוץ",
				"השאירו פרטים ואנו נחזור אליכם בהקדם לתיאום פגישה עם עורך דין מומחה"),

			h.Div(h.Class("grid items-stretch gap-8 md:grid-cols-2"),
				h.Div(h.ID(BookingPanelID), h.Class("neumorphic-card rounded-2xl p-8"),
					BookingForm(props),
				),
				h.Div(h.Class("relative hidden min-h-[420px] overflow-hidden rounded-2xl md:block"),
					h.Img(h.Src(bookingImage), h.Alt("פגישת ייעוץ משפטי"), g.Attr("loading", "lazy"), h.Class("absolute inset-0 h-full w-full object-cover")),
				),
			),
		),
	)
}

// BookingForm renders the form alone; it is the fragment swapped into the panel
func BookingForm(props BookingFormProps) g.Node {
	return g.El("form",
		h.Method("post"),
		h.Action("/booking"),
		g.Attr("hx-post", "/booking"),
		g.Attr("hx-target", "#"+BookingPanelID),
		g.Attr("hx-swap", "innerHTML"),
		g.Attr("hx-disabled-elt", "find button[type='submit']"),
		g.Attr("novalidate"),
		h.Class("space-y-5"),

		h.Input(h.Type("hidden"), h.Name(middleware.CSRFFormField), h.Value(props.CSRFToken)),

		g.If(props.Alert != "",
			h.Div(g.Attr("role", "alert"), h.Class("rounded-xl border border-red-200 bg-red-50/70 px-4 py-3 text-sm font-medium text-red-700"),
				g.Text(props.Alert),
			),
		),

		bookingField(props, "name", "שם מלא", "text", "ישראל ישראלי", "name", true),
		bookingField(props, "phone", "טלפון", "tel", "050-0000000", "tel", true),
		bookingField(props, "email", "דוא\"ל", "email", "your@email.com", "email", true),

		h.Div(
			g.El("label", g.Attr("for", "booking-message"), h.Class("mb-2 block font-medium text-gray-700"), g.Text("הודעה")),
			h.Textarea(
				h.ID("booking-message"),
				h.Name("message"),
				g.Attr("rows", "4"),
				h.Placeholder("תיאור קצר של הנושא..."),
				h.Class("w-full rounded-xl border border-gray-200 bg-white/70 px-4 py-3 focus:border-secondary focus:outline-none"),
				g.Text(props.Values.Message),
			),
		),

		g.If(props.TurnstileSiteKey != "",
			h.Div(h.Class("cf-turnstile"), g.Attr("data-sitekey", props.TurnstileSiteKey), g.Attr("data-language", "he")),
		),

		components.Button(components.ButtonProps{FullWidth: true, Size: components.ButtonLarge},
			h.Type("submit"),
			h.Span(h.Class("when-idle"), g.Text("קבע תור עכשיו")),
			h.Span(h.Class("when-busy items-center gap-2"), g.Text("שולח...")),
		),
	)
}

func bookingField(props BookingFormProps, field, label, inputType, placeholder, autocomplete string, required bool) g.Node {
	id := "booking-" + field
	errID := id + "-error"
	msg, invalid := props.Errors[field]

	return h.Div(
		g.El("label", g.Attr("for", id), h.Class("mb-2 block font-medium text-gray-700"),
			g.Text(label),
			g.If(required, h.Span(h.Class("text-red-500"), g.Attr("aria-hidden", "true"), g.Text(" *"))),
		),
		h.Input(
			h.ID(id),
			h.Name(field),
			h.Type(inputType),
			h.Value(fieldValue(props.Values, field)),
			h.Placeholder(placeholder),
			g.Attr("autocomplete", autocomplete),
			g.If(inputType == "tel" || inputType == "email", g.Attr("dir", "ltr")),
			g.If(required, h.Required()),
			g.If(invalid, g.Attr("aria-invalid", "true")),
			g.If(invalid, g.Attr("aria-describedby", errID)),
			components.ClassNames(
				"w-full rounded-xl border bg-white/70 px-4 py-3 focus:border-secondary focus:outline-none",
				components.When(invalid, "border-red-400"),
				components.When(!invalid, "border-gray-200"),
			),
		),
		g.If(invalid, h.P(h.ID(errID), h.Class("mt-1 text-sm text-red-600"), g.Text(msg))),
	)
}

func fieldValue(req models.BookingRequest, field string) string {
	switch field {
	case "name":
		return req.Name
	case "phone":
		return req.Phone
	case "email":
		return req.Email
	default:
		return req.Message
	}
}

// BookingSuccess acknowledges a submission and swaps the empty form back after five seconds
func BookingSuccess(receipt *models.BookingReceipt) g.Node {
	return h.Div(
		g.Attr("role", "status"),
		h.Class("fade-up flex h-full flex-col items-center justify-center rounded-xl bg-secondary/10 p-8 text-center"),
		g.Attr("hx-get", "/booking/form"),
		g.Attr("hx-trigger", "load delay:5s"),
		g.Attr("hx-target", "#"+BookingPanelID),
		g.Attr("hx-swap", "innerHTML"),

		h.Div(h.Class("mb-4 flex h-16 w-16 items-center justify-center rounded-full bg-secondary text-white"),
			components.Icon("check", "h-8 w-8"),
		),
		h.H3(h.Class("mb-2 text-xl font-bold"), g.Text("תודה על פנייתך!")),
		h.P(g.Text("נציג מטעמנו יצור איתך קשר בהקדם.")),
		g.If(receipt != nil && receipt.Reference != "",
			h.P(h.Class("mt-4 text-sm text-gray-500"),
				g.Text("מספר פנייה: "),
				h.Span(g.Attr("dir", "ltr"), h.Class("font-mono font-bold"), g.Text(referenceOf(receipt))),
			),
		),
	)
}

func referenceOf(receipt *models.BookingReceipt) string {
	if receipt == nil {
		return ""
	}
	return receipt.Reference
}
