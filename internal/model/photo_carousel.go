package model

// PhotoCarouselItem is one slide of the office photo gallery.
type PhotoCarouselItem struct {
	Entry
	Title       string  `json:"title" gorm:"size:255;not null"`
	Description *string `json:"description" gorm:"type:text"`
	ImageURL    string  `json:"imageUrl" gorm:"column:image_url;size:500;not null"`
	ShowText    bool    `json:"showText" gorm:"not null"`
}

// TableName keeps the table name used by existing deployments.
func (PhotoCarouselItem) TableName() string {
	return "photo_carousel"
}
