package services

import (
	"beta_law_site/models"
	"fmt"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedContent loads the site content into the catalog.
// Rows are upserted by ID, so running it twice leaves one copy of everything.
func SeedContent(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := upsert(tx, testimonialSeed); err != nil {
			return fmt.Errorf("failed to seed testimonials: %w", err)
		}
		if err := upsert(tx, teamSeed); err != nil {
			return fmt.Errorf("failed to seed team members: %w", err)
		}
		if err := upsert(tx, practiceAreaSeed); err != nil {
			return fmt.Errorf("failed to seed practice areas: %w", err)
		}
		if err := upsert(tx, statisticSeed); err != nil {
			return fmt.Errorf("failed to seed statistics: %w", err)
		}

		log.Printf("[SEED] Content catalog loaded: %d testimonials, %d team members, %d practice areas",
			len(testimonialSeed), len(teamSeed), len(practiceAreaSeed))
		return nil
	})
}

func upsert[T any](tx *gorm.DB, rows []T) error {
	return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rows).Error
}

var testimonialSeed = []models.Testimonial{
	{
		ID:       1,
		Position: 1,
		Quote:    "משרד עורכי דין ביתא סייע לנו בהתמודדות עם סוגיות רגולטוריות מורכבות בתעשיית המזון. הם הבינו את הצרכים הייחודיים שלנו והציעו פתרונות יצירתיים שאפשרו לנו להתרחב לשווקים חדשים.",
		Name:     "דניאל כהן",
		Title:    "מנכ\"ל",
		Company:  "טעמי הארץ בע\"מ",
	},
	{
		ID:       2,
		Position: 2,
		Quote:    "הליווי המשפטי שקיבלנו ממשרד עורכי דין ביתא היה מקצועי ביותר. הם עזרו לנו לנווט בסבך החוקים והתקנות של תעשיית המזון, מה שאפשר לנו להתמקד בפיתוח המוצרים שלנו.",
		Name:     "מיכל לוי",
		Title:    "סמנכ\"לית משפטית",
		Company:  "מאפיית הדגנים",
	},
	{
		ID:       3,
		Position: 3,
		Quote:    "ההבנה העמוקה של צוות משרד עורכי דין ביתא בתעשיית המזון הייתה נכס עצום עבורנו. הם סייעו לנו בהשקת קו מוצרים חדש תוך עמידה בכל הדרישות הרגולטוריות, בזמן ובתקציב.",
		Name:     "יוסי אברהם",
		Title:    "בעלים",
		Company:  "טעמים טבעיים בע\"מ",
	},
	{
		ID:       4,
		Position: 4,
		Quote:    "אנו עובדים עם משרד עורכי דין ביתא כבר חמש שנים, והם תמיד מספקים שירות מעולה. הידע והניסיון שלהם בתחום המזון חסכו לנו זמן וכסף רב בתהליכי אישור מוצרים.",
		Name:     "רונית שמעוני",
		Title:    "מנהלת פיתוח עסקי",
		Company:  "תבליני השף",
	},
	{
		ID:       5,
		Position: 5,
		Quote:    "הצוות המשפטי של ביתא הוכיח את עצמו כשותף אסטרטגי אמיתי לעסק שלנו. הליווי המשפטי שלהם בתהליך המיזוג עם חברה בינלאומית היה מדויק, מקצועי ויעיל מאוד.",
		Name:     "אבי גולדשטיין",
		Title:    "סמנכ\"ל תפעול",
		Company:  "מזון בריא בע\"מ",
	},
}

var teamSeed = []models.TeamMember{
	{
		ID:        1,
		Position:  1,
		Name:      "עו״ד רונית לוי",
		Role:      "שותפה בכירה",
		Specialty: "דיני מזון ורגולציה",
		Bio:       "מתמחה בייעוץ משפטי לחברות מזון בנושאי רגולציה, תקינה ובטיחות מזון. בעלת ניסיון של למעלה מ-15 שנה בליווי יצרני מזון מובילים.",
		ImageURL:  "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:        2,
		Position:  2,
		Name:      "עו״ד אמיר כהן",
		Role:      "שותף מייסד",
		Specialty: "קניין רוחני במזון",
		Bio:       "מומחה בהגנה על פטנטים, סימני מסחר וסודות מסחריים בתעשיית המזון. מלווה סטארט-אפים בתחום הפודטק וחברות מזון ותיקות.",
		ImageURL:  "https://images.unsplash.com/photo-1556157382-97eda2f9e2bf?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:        3,
		Position:  3,
		Name:      "עו״ד מיכל ברקוביץ",
		Role:      "ראש מחלקת ליטיגציה",
		Specialty: "תביעות צרכניות",
		Bio:       "מתמחה בייצוג חברות מזון בתביעות ייצוגיות וסכסוכים צרכניים. בעלת הצלחות מוכחות בהגנה על לקוחות מול רשויות רגולטוריות.",
		ImageURL:  "https://images.unsplash.com/photo-1580894732444-8ecded7900cd?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:        4,
		Position:  4,
		Name:      "עו״ד יוסף אלון",
		Role:      "שותף",
		Specialty: "יבוא ויצוא מזון",
		Bio:       "מומחה בדיני סחר בינלאומי, מכסים והיבטים משפטיים של יבוא ויצוא מזון. מלווה יבואנים ויצואנים בהתמודדות עם רגולציה מקומית ובינלאומית.",
		ImageURL:  "https://images.unsplash.com/photo-1519085360753-af0119f7cbe7?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:        5,
		Position:  5,
		Name:      "עו״ד שירה גולדשטיין",
		Role:      "ראש מחלקת חוזים",
		Specialty: "הסכמי הפצה ושיווק",
		Bio:       "מתמחה בניסוח וליווי הסכמים מסחריים בתעשיית המזון, כולל הסכמי הפצה, זכיינות ושיתופי פעולה אסטרטגיים בין יצרנים למשווקים.",
		ImageURL:  "https://images.unsplash.com/photo-1551836022-deb4988cc6c0?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
	},
}

var practiceAreaSeed = []models.PracticeArea{
	{ID: 1, Position: 1, Icon: models.IconScale, Title: "תאימות רגולטורית", Description: "ייעוץ משפטי בנושא עמידה בתקנות המזון, תקני בטיחות, ותהליכי אישור מוצרים חדשים."},
	{ID: 2, Position: 2, Icon: models.IconShield, Title: "קניין רוחני", Description: "הגנה על מותגים, פטנטים, סימני מסחר ומתכונים סודיים בתעשיית המזון."},
	{ID: 3, Position: 3, Icon: models.IconContract, Title: "חוזים עסקיים", Description: "ניסוח וסקירת חוזים עם ספקים, מפיצים ושותפים עסקיים בתעשיית המזון והמשקאות."},
	{ID: 4, Position: 4, Icon: models.IconWarning, Title: "תביעות אחריות מוצר", Description: "ייצוג משפטי בתביעות הקשורות לאיכות מוצר, סימון לא נכון או נזקי בריאות."},
	{ID: 5, Position: 5, Icon: models.IconGavel, Title: "ליטיגציה מסחרית", Description: "ייצוג בסכסוכים משפטיים, תביעות נזיקין והליכים משפטיים בתעשיית המזון."},
	{ID: 6, Position: 6, Icon: models.IconMerge, Title: "מיזוגים ורכישות", Description: "ליווי משפטי בעסקאות מיזוג, רכישה והשקעות בחברות בתעשיית המזון."},
}

var statisticSeed = []models.Statistic{
	{ID: 1, Position: 1, Value: 15, Label: "שנות ניסיון", Suffix: "+"},
	{ID: 2, Position: 2, Value: 200, Label: "לקוחות מרוצים", Suffix: "+"},
	{ID: 3, Position: 3, Value: 50, Label: "תיקים משפטיים", Suffix: "+"},
	{ID: 4, Position: 4, Value: 95, Label: "אחוזי הצלחה", Suffix: "%"},
}
