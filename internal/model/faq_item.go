package model

// FaqItem is one question/answer pair of the FAQ section.
type FaqItem struct {
	Entry
	Question string `json:"question" gorm:"type:text;not null"`
	Answer   string `json:"answer" gorm:"type:text;not null"`
}
