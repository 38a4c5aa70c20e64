package services

import (
	"beta_law_site/models"
	"beta_law_site/services/showcase"
	"fmt"

	"gorm.io/gorm"
)

// GetTestimonials returns all testimonials in display order
func GetTestimonials(db *gorm.DB) ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	if err := db.Order("position ASC").Find(&testimonials).Error; err != nil {
		return nil, fmt.Errorf("failed to load testimonials: %w", err)
	}
	return testimonials, nil
}

// GetTeamMembers returns the team in display order
func GetTeamMembers(db *gorm.DB) ([]models.TeamMember, error) {
	var members []models.TeamMember
	if err := db.Order("position ASC").Find(&members).Error; err != nil {
		return nil, fmt.Errorf("failed to load team members: %w", err)
	}
	return members, nil
}

// GetPracticeAreas returns the services grid in display order
func GetPracticeAreas(db *gorm.DB) ([]models.PracticeArea, error) {
	var areas []models.PracticeArea
	if err := db.Order("position ASC").Find(&areas).Error; err != nil {
		return nil, fmt.Errorf("failed to load practice areas: %w", err)
	}
	return areas, nil
}

// GetStatistics returns the about-section counters in display order
func GetStatistics(db *gorm.DB) ([]models.Statistic, error) {
	var stats []models.Statistic
	if err := db.Order("position ASC").Find(&stats).Error; err != nil {
		return nil, fmt.Errorf("failed to load statistics: %w", err)
	}
	return stats, nil
}

// LoadShowcaseItems reads the testimonials once and turns them into the
// fixed sequence the showcase rotates through
func LoadShowcaseItems(db *gorm.DB) ([]showcase.Item, error) {
	testimonials, err := GetTestimonials(db)
	if err != nil {
		return nil, err
	}
	if len(testimonials) == 0 {
		return nil, showcase.ErrEmptySequence
	}

	items := make([]showcase.Item, len(testimonials))
	for i, t := range testimonials {
		items[i] = showcase.Item{
			ID:       t.ID,
			Quote:    t.Quote,
			Name:     t.Name,
			Position: t.Title,
			Company:  t.Company,
		}
	}
	return items, nil
}

// HomeContent is everything the landing page reads from the catalog
type HomeContent struct {
	Statistics    []models.Statistic
	PracticeAreas []models.PracticeArea
	Team          []models.TeamMember
}

// GetHomeContent loads the landing page sections
func GetHomeContent(db *gorm.DB) (*HomeContent, error) {
	stats, err := GetStatistics(db)
	if err != nil {
		return nil, err
	}
	areas, err := GetPracticeAreas(db)
	if err != nil {
		return nil, err
	}
	team, err := GetTeamMembers(db)
	if err != nil {
		return nil, err
	}
	return &HomeContent{
		Statistics:    stats,
		PracticeAreas: areas,
		Team:          team,
	}, nil
}
