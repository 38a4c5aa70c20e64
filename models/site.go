package models

// FirmName is the display name of the firm
const FirmName = "משרד עורכי דין ביתא"

// NavLink is an entry of the navbar or footer
type NavLink struct {
	Title string
	Href  string
}

// SocialLink is an icon link in the footer
type SocialLink struct {
	Label string
	Href  string
	Icon  string
}

// BusinessHours is one line of the opening hours table
type BusinessHours struct {
	Days  string
	Hours string
}

// ContactInfo holds the firm's contact details
type ContactInfo struct {
	Address   string
	MapURL    string
	Phone     string
	PhoneHref string
	Email     string
	Hours     []BusinessHours
}

// NavLinks are the primary navigation entries
var NavLinks = []NavLink{
	{Title: "דף הבית", Href: "/"},
	{Title: "אודות", Href: "/about"},
	{Title: "שירותים", Href: "/services"},
	{Title: "הזמנת תור", Href: "/booking"},
}

// FooterLinks are the quick-navigation entries in the footer
var FooterLinks = []NavLink{
	{Title: "דף הבית", Href: "/"},
	{Title: "אודות", Href: "/about"},
	{Title: "שירותים", Href: "/services"},
	{Title: "הזמנת פגישה", Href: "/booking"},
	{Title: "צור קשר", Href: "/contact"},
}

// SocialLinks are the footer social icons
var SocialLinks = []SocialLink{
	{Label: "פייסבוק", Href: "https://facebook.com", Icon: "facebook"},
	{Label: "טוויטר", Href: "https://twitter.com", Icon: "twitter"},
	{Label: "אינסטגרם", Href: "https://instagram.com", Icon: "instagram"},
	{Label: "לינקדאין", Href: "https://linkedin.com", Icon: "linkedin"},
}

// Contact is the firm's contact card
var Contact = ContactInfo{
	Address:   "רחוב הרצל 123, תל אביב, ישראל",
	MapURL:    "https://maps.google.com/?q=הרצל+123+תל+אביב",
	Phone:     "03-1234567",
	PhoneHref: "tel:+97231234567",
	Email:     "info@beta-law.co.il",
	Hours: []BusinessHours{
		{Days: "ראשון - חמישי", Hours: "09:00 - 18:00"},
		{Days: "שישי", Hours: "09:00 - 13:00"},
		{Days: "שבת", Hours: "סגור"},
	},
}

// Highlights are the badges shown in the hero and about sections
var Highlights = []string{"ייעוץ משפטי מקצועי", "ליווי אישי", "ניסיון רב שנים", "זמינות גבוהה"}

// FocusAreas are the short tags under the about text
var FocusAreas = []string{"רגולציית מזון", "חוזים מסחריים", "קניין רוחני"}
