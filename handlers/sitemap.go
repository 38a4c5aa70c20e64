package handlers

import (
	"encoding/xml"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

type SitemapURLSet struct {
	XMLName string       `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// GetSitemapHandler generates the XML sitemap of the public pages
func GetSitemapHandler(c echo.Context) error {
	baseURL := strings.TrimRight(appConfig(c).AppURL, "/")

	urls := []SitemapURL{
		{Loc: baseURL + "/", ChangeFreq: "weekly", Priority: 1.0},
		{Loc: baseURL + "/about", ChangeFreq: "monthly", Priority: 0.8},
		{Loc: baseURL + "/services", ChangeFreq: "monthly", Priority: 0.8},
		{Loc: baseURL + "/booking", ChangeFreq: "monthly", Priority: 0.9},
		{Loc: baseURL + "/contact", ChangeFreq: "yearly", Priority: 0.7},
	}

	urlSet := SitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXML)
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}

	encoder := xml.NewEncoder(c.Response().Writer)
	encoder.Indent("", "  ")
	return encoder.Encode(urlSet)
}

// GetRobotsHandler serves robots.txt pointing crawlers at the sitemap
func GetRobotsHandler(c echo.Context) error {
	baseURL := strings.TrimRight(appConfig(c).AppURL, "/")
	body := "User-agent: *\n" +
		"Allow: /\n" +
		"Disallow: /showcase/\n" +
		"Disallow: /booking/form\n" +
		"\n" +
		"Sitemap: " + baseURL + "/sitemap.xml\n"
	return c.String(http.StatusOK, body)
}
