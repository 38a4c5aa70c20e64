package models

import "time"

// Testimonial is a client quote shown in the rotating showcase.
// Position fixes the display order; ID is stable across restarts.
type Testimonial struct {
	ID        int       `gorm:"primaryKey;autoIncrement:false" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Position int    `gorm:"not null;uniqueIndex" json:"position"`
	Quote    string `gorm:"type:text;not null" json:"quote"`
	Name     string `gorm:"not null" json:"name"`
	Title    string `gorm:"not null" json:"title"` // role at the client company
	Company  string `gorm:"not null" json:"company"`
}

// TableName specifies the table name for Testimonial
func (Testimonial) TableName() string {
	return "testimonials"
}
