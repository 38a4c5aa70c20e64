package models

import "time"

// TeamMember is a lawyer shown in the team section
type TeamMember struct {
	ID        int       `gorm:"primaryKey;autoIncrement:false" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Position  int    `gorm:"not null;index" json:"position"`
	Name      string `gorm:"not null" json:"name"`
	Role      string `gorm:"not null" json:"role"`
	Specialty string `gorm:"not null" json:"specialty"`
	Bio       string `gorm:"type:text" json:"bio"`
	ImageURL  string `json:"image_url"`
}

// TableName specifies the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
