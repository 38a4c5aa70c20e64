package models

import "time"

// Icon keys understood by the view layer
const (
	IconScale    = "scale"
	IconShield   = "shield"
	IconContract = "contract"
	IconWarning  = "warning"
	IconGavel    = "gavel"
	IconMerge    = "merge"
)

// PracticeArea is one card of the services section
type PracticeArea struct {
	ID        int       `gorm:"primaryKey;autoIncrement:false" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Position    int    `gorm:"not null;index" json:"position"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Icon        string `gorm:"not null;default:'scale'" json:"icon"`
}

// TableName specifies the table name for PracticeArea
func (PracticeArea) TableName() string {
	return "practice_areas"
}

// Statistic is a counter in the about section ("15+ years of experience")
type Statistic struct {
	ID        int       `gorm:"primaryKey;autoIncrement:false" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Position int    `gorm:"not null;index" json:"position"`
	Value    int    `gorm:"not null" json:"value"`
	Label    string `gorm:"not null" json:"label"`
	Suffix   string `gorm:"not null;default:'+'" json:"suffix"`
}

// TableName specifies the table name for Statistic
func (Statistic) TableName() string {
	return "statistics"
}

// ContentModels lists every catalog table, for migrations
func ContentModels() []interface{} {
	return []interface{}{
		&Testimonial{},
		&TeamMember{},
		&PracticeArea{},
		&Statistic{},
	}
}
