package handlers

import (
	"strings"

	"beta_law_site/models"
)

const defaultOGImage = "/static/images/favicon.svg"

type seoPage struct {
	Path string
	SEO  models.SEO
}

// SEO configurations for the public pages. Canonical and image URLs are
// resolved against the configured APP_URL.
var pageSEO = map[string]seoPage{
	"landing": {
		Path: "/",
		SEO: models.SEO{
			Title:       models.FirmName,
			Description: "משרד עורכי דין מוביל המתמחה בייעוץ משפטי לחברות בתעשיית המזון והמשקאות: רגולציה, קניין רוחני, חוזים מסחריים וליטיגציה.",
			Keywords:    "עורך דין, משרד עורכי דין, ייעוץ משפטי, רגולציית מזון, קניין רוחני, חוזים מסחריים, ליטיגציה",
			OGType:      "website",
			TwitterCard: "summary_large_image",
		},
	},
	"about": {
		Path: "/about",
		SEO: models.SEO{
			Title:       "אודות | " + models.FirmName,
			Description: "למעלה מ-15 שנות ניסיון בליווי משפטי של חברות מזון ומשקאות. הכירו את הצוות המקצועי של משרד עורכי דין ביתא.",
			Keywords:    "אודות, צוות עורכי דין, משרד עורכי דין ביתא",
			OGType:      "website",
			TwitterCard: "summary_large_image",
		},
	},
	"services": {
		Path: "/services",
		SEO: models.SEO{
			Title:       "שירותים | " + models.FirmName,
			Description: "תאימות רגולטורית, קניין רוחני, חוזים עסקיים, אחריות מוצר, ליטיגציה מסחרית ומיזוגים ורכישות בתעשיית המזון.",
			Keywords:    "תאימות רגולטורית, קניין רוחני, חוזים עסקיים, ליטיגציה מסחרית, מיזוגים ורכישות",
			OGType:      "website",
			TwitterCard: "summary_large_image",
		},
	},
	"booking": {
		Path: "/booking",
		SEO: models.SEO{
			Title:       "הזמנת פגישת ייעוץ | " + models.FirmName,
			Description: "השאירו פרטים ואנו נחזור אליכם בהקדם לתיאום פגישה עם עורך דין מומחה.",
			Keywords:    "פגישת ייעוץ, הזמנת תור, עורך דין",
			OGType:      "website",
			TwitterCard: "summary",
		},
	},
	"contact": {
		Path: "/contact",
		SEO: models.SEO{
			Title:       "צור קשר | " + models.FirmName,
			Description: "רחוב הרצל 123, תל אביב. טלפון 03-1234567. צוות המשרד מוכן לענות על כל שאלה ולסייע בכל נושא משפטי.",
			Keywords:    "צור קשר, כתובת, טלפון, שעות פעילות",
			OGType:      "website",
			TwitterCard: "summary",
		},
	},
}

// GetSEO returns the SEO configuration for a page, or nil for unknown pages
func GetSEO(page, baseURL string) *models.SEO {
	p, ok := pageSEO[page]
	if !ok {
		return nil
	}

	// Return a copy to avoid mutations
	seo := p.SEO
	base := strings.TrimRight(baseURL, "/")
	seo.WithCanonical(base + p.Path)
	seo.OGImage = base + defaultOGImage
	seo.Locale = "he_IL"
	return &seo
}
