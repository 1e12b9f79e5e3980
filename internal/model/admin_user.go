package model

import "time"

// AdminUser is the single site owner allowed into the dashboard.
type AdminUser struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	CreatedAt    time.Time `json:"createdAt"`
}

// All lists every model handled by AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&AdminUser{},
		&SiteConfig{},
		&Testimonial{},
		&FaqItem{},
		&Service{},
		&PhotoCarouselItem{},
		&ExpertiseCard{},
	}
}
