package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Stroke paths (24x24 viewBox) keyed by icon name
var iconPaths = map[string][]string{
	"scale":     {"M12 3v18", "M5 7h14", "M3 14l2-7 2 7a2 2 0 0 1-4 0z", "M17 14l2-7 2 7a2 2 0 0 1-4 0z", "M8 21h8"},
	"shield":    {"M12 3l8 3v6c0 5-3.5 8-8 9-4.5-1-8-4-8-9V6z", "M9 12l2 2 4-4"},
	"contract":  {"M7 3h7l5 5v13H7z", "M14 3v5h5", "M10 13h6", "M10 17h6"},
	"warning":   {"M12 4l9 16H3z", "M12 10v4", "M12 17h.01"},
	"gavel":     {"M14 4l6 6", "M11 7l6 6", "M12.5 5.5l-5 5", "M9.5 8.5L3 15l2 2 6.5-6.5", "M13 21h8"},
	"merge":     {"M6 3v6a6 6 0 0 0 6 6h6", "M15 12l3 3-3 3", "M6 21v-4"},
	"check":     {"M5 12l5 5L20 7"},
	"chevron-l": {"M15 18l-6-6 6-6"},
	"chevron-r": {"M9 18l6-6-6-6"},
	"pause":     {"M9 5v14", "M15 5v14"},
	"play":      {"M7 4l13 8-13 8z"},
	"menu":      {"M4 6h16", "M4 12h16", "M4 18h16"},
	"close":     {"M6 6l12 12", "M18 6L6 18"},
	"map-pin":   {"M12 21s-7-6.5-7-12a7 7 0 0 1 14 0c0 5.5-7 12-7 12z", "M12 11.5a2.5 2.5 0 1 0 0-5 2.5 2.5 0 0 0 0 5z"},
	"phone":     {"M5 4h4l2 5-2.5 1.5a11 11 0 0 0 5 5L15 13l5 2v4a2 2 0 0 1-2 2A16 16 0 0 1 3 6a2 2 0 0 1 2-2z"},
	"mail":      {"M3 6h18v12H3z", "M3 7l9 6 9-6"},
	"clock":     {"M12 21a9 9 0 1 0 0-18 9 9 0 0 0 0 18z", "M12 7v5l3 2"},
	"quote":     {"M9 7H5v6h4v-2a4 4 0 0 1-4 4", "M19 7h-4v6h4v-2a4 4 0 0 1-4 4"},
	"facebook":  {"M15 3h-3a4 4 0 0 0-4 4v3H5v4h3v7h4v-7h3l1-4h-4V7a1 1 0 0 1 1-1h3z"},
	"twitter":   {"M4 4l16 16", "M20 4L4 20"},
	"instagram": {"M7 3h10a4 4 0 0 1 4 4v10a4 4 0 0 1-4 4H7a4 4 0 0 1-4-4V7a4 4 0 0 1 4-4z", "M12 16a4 4 0 1 0 0-8 4 4 0 0 0 0 8z", "M17.5 6.5h.01"},
	"linkedin":  {"M4 9h4v12H4z", "M6 3a2 2 0 1 0 0 4 2 2 0 0 0 0-4z", "M10 9h4v2a4 4 0 0 1 7 3v7h-4v-6a2 2 0 0 0-4 0v6h-3z"},
}

// Icon renders a decorative inline SVG. Unknown names fall back to "scale".
func Icon(name, class string) g.Node {
	paths, ok := iconPaths[name]
	if !ok {
		paths = iconPaths["scale"]
	}

	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.Attr("aria-hidden", "true"),
		h.Class(class),
		g.Map(paths, func(d string) g.Node {
			return g.El("path", g.Attr("d", d))
		}),
	)
}
