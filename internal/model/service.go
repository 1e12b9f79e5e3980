package model

// Service is an offering listed in the services section.
type Service struct {
	Entry
	Title        string  `json:"title" gorm:"size:255;not null"`
	Description  string  `json:"description" gorm:"type:text;not null"`
	Icon         string  `json:"icon" gorm:"size:100;not null"`
	Gradient     string  `json:"gradient" gorm:"size:100;not null"`
	Price        *string `json:"price" gorm:"size:100"`
	Duration     *string `json:"duration" gorm:"size:100"`
	ShowPrice    bool    `json:"showPrice" gorm:"not null"`
	ShowDuration bool    `json:"showDuration" gorm:"not null"`
}
