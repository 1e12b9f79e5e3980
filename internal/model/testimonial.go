package model

// Testimonial is a client review shown in the testimonials carousel.
type Testimonial struct {
	Entry
	Name        string  `json:"name" gorm:"size:255;not null"`
	Service     string  `json:"service" gorm:"size:255;not null"`
	Testimonial string  `json:"testimonial" gorm:"type:text;not null"`
	Rating      int     `json:"rating" gorm:"not null"`
	Gender      string  `json:"gender" gorm:"size:50;not null"` // avatar tag
	Photo       *string `json:"photo" gorm:"size:500"`
}
