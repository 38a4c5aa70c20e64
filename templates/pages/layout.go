package pages

import (
	"context"

	"beta_law_site/middleware"
	"beta_law_site/models"
	"beta_law_site/templates/components"
	"beta_law_site/templates/partials"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	htmxURL      = "https://unpkg.com/htmx.org@2.0.4"
	htmxSSEURL   = "https://unpkg.com/htmx-ext-sse@2.2.2"
	tailwindURL  = "https://cdn.tailwindcss.com"
	turnstileURL = "https://challenges.cloudflare.com/turnstile/v0/api.js"

	tailwindConfig = `tailwind.config = {theme: {extend: {colors: {primary: "#1e3a5f", secondary: "#4ecdc4", accent: "#d4a5a5"}}}};`
)

// PageProps is shared by every full page
type PageProps struct {
	SEO              *models.SEO
	CSRFToken        string
	CurrentPath      string
	Year             int
	TurnstileSiteKey string
}

// Layout renders the document shell around body
func Layout(ctx context.Context, props PageProps, body ...g.Node) g.Node {
	seo := props.SEO
	if seo == nil {
		seo = models.DefaultSEO(models.FirmName, "")
	}
	nonce := middleware.GetNonce(ctx)

	return h.Doctype(
		h.HTML(h.Lang("he"), g.Attr("dir", "rtl"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.Meta(h.Name("csrf-token"), h.Content(props.CSRFToken)),
				seoHead(seo),
				h.Link(h.Rel("icon"), h.Type("image/svg+xml"), h.Href(middleware.AssetURL(ctx, "images/favicon.svg"))),
				h.Link(h.Rel("stylesheet"), h.Href(middleware.AssetURL(ctx, "css/site.css"))),
				h.Script(h.Src(tailwindURL), nonceAttr(nonce)),
				h.Script(nonceAttr(nonce), g.Raw(tailwindConfig)),
				h.Script(h.Src(htmxURL), nonceAttr(nonce), g.Attr("defer")),
				h.Script(h.Src(htmxSSEURL), nonceAttr(nonce), g.Attr("defer")),
				h.Script(h.Src(middleware.AssetURL(ctx, "js/site.js")), nonceAttr(nonce), g.Attr("defer")),
				g.If(props.TurnstileSiteKey != "",
					h.Script(h.Src(turnstileURL), nonceAttr(nonce), g.Attr("async"), g.Attr("defer")),
				),
			),
			h.Body(h.Class("min-h-screen antialiased"),
				h.A(h.Href("#main"), h.Class("sr-only focus:not-sr-only focus:absolute focus:right-4 focus:top-4 focus:z-[60]"), g.Text("דלג לתוכן הראשי")),
				partials.Navbar(props.CurrentPath),
				h.Main(h.ID("main"), g.Group(body)),
				partials.Footer(props.Year),
			),
		),
	)
}

func seoHead(seo *models.SEO) g.Node {
	return g.Group([]g.Node{
		g.El("title", g.Text(seo.Title)),
		g.If(seo.Description != "", h.Meta(h.Name("description"), h.Content(seo.Description))),
		g.If(seo.Keywords != "", h.Meta(h.Name("keywords"), h.Content(seo.Keywords))),
		g.If(seo.NoIndex, h.Meta(h.Name("robots"), h.Content("noindex, nofollow"))),
		g.If(seo.Canonical != "", h.Link(h.Rel("canonical"), h.Href(seo.Canonical))),
		h.Meta(g.Attr("property", "og:title"), h.Content(seo.GetOGTitle())),
		g.If(seo.GetOGDesc() != "", h.Meta(g.Attr("property", "og:description"), h.Content(seo.GetOGDesc()))),
		h.Meta(g.Attr("property", "og:type"), h.Content(seo.OGType)),
		h.Meta(g.Attr("property", "og:locale"), h.Content(seo.Locale)),
		g.If(seo.Canonical != "", h.Meta(g.Attr("property", "og:url"), h.Content(seo.Canonical))),
		g.If(seo.OGImage != "", h.Meta(g.Attr("property", "og:image"), h.Content(seo.OGImage))),
		h.Meta(h.Name("twitter:card"), h.Content(seo.TwitterCard)),
	})
}

func nonceAttr(nonce string) g.Node {
	return g.If(nonce != "", g.Attr("nonce", nonce))
}

// Page renders a complete document as a templ.Component
func Page(ctx context.Context, props PageProps, body ...g.Node) templ.Component {
	return components.View(Layout(ctx, props, body...))
}
