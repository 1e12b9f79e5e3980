package model

import "time"

// ExpertiseCard is a specialty card of the about section.
type ExpertiseCard struct {
	Entry
	Title           string    `json:"title" gorm:"size:255;not null"`
	Description     string    `json:"description" gorm:"type:text;not null"`
	Icon            string    `json:"icon" gorm:"size:100;not null"`
	BackgroundColor string    `json:"backgroundColor" gorm:"column:background_color;size:7;not null"`
	IconColor       string    `json:"iconColor" gorm:"column:icon_color;size:7;not null"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
