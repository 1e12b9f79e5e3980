package handler

import (
	"psisite/internal/model"
	"psisite/internal/service"
)

// ExpertiseCardHandler serves /expertise-cards.
type ExpertiseCardHandler = ContentHandler[model.ExpertiseCard, CreateExpertiseCardRequest, UpdateExpertiseCardRequest]

// NewExpertiseCardHandler creates an expertise card handler.
func NewExpertiseCardHandler(svc service.ContentService[model.ExpertiseCard]) *ExpertiseCardHandler {
	return NewContentHandler[model.ExpertiseCard, CreateExpertiseCardRequest, UpdateExpertiseCardRequest](svc)
}

const (
	defaultExpertiseIcon       = "Brain"
	defaultExpertiseBackground = "#ffffff"
	defaultExpertiseIconColor  = "#8b5cf6"
)

// CreateExpertiseCardRequest represents a new specialty card.
type CreateExpertiseCardRequest struct {
	Title           string  `json:"title" validate:"required,max=255"`
	Description     string  `json:"description" validate:"required"`
	Icon            *string `json:"icon" validate:"omitnil,min=1,max=100"`
	BackgroundColor *string `json:"backgroundColor" validate:"omitnil,hexcolor"`
	IconColor       *string `json:"iconColor" validate:"omitnil,hexcolor"`
	IsActive        *bool   `json:"isActive"`
	Order           *int    `json:"order"`
}

func (r CreateExpertiseCardRequest) ToModel() model.ExpertiseCard {
	return model.ExpertiseCard{
		Entry: model.Entry{
			IsActive: valueOr(r.IsActive, true),
			Order:    valueOr(r.Order, 0),
		},
		Title:           r.Title,
		Description:     r.Description,
		Icon:            valueOr(r.Icon, defaultExpertiseIcon),
		BackgroundColor: valueOr(r.BackgroundColor, defaultExpertiseBackground),
		IconColor:       valueOr(r.IconColor, defaultExpertiseIconColor),
	}
}

type UpdateExpertiseCardRequest struct {
	Title           *string `json:"title" validate:"omitnil,min=1,max=255"`
	Description     *string `json:"description" validate:"omitnil,min=1"`
	Icon            *string `json:"icon" validate:"omitnil,min=1,max=100"`
	BackgroundColor *string `json:"backgroundColor" validate:"omitnil,hexcolor"`
	IconColor       *string `json:"iconColor" validate:"omitnil,hexcolor"`
	IsActive        *bool   `json:"isActive"`
	Order           *int    `json:"order"`
}

func (r UpdateExpertiseCardRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	setIfPresent(changes, "title", r.Title)
	setIfPresent(changes, "description", r.Description)
	setIfPresent(changes, "icon", r.Icon)
	setIfPresent(changes, "background_color", r.BackgroundColor)
	setIfPresent(changes, "icon_color", r.IconColor)
	setIfPresent(changes, "is_active", r.IsActive)
	setIfPresent(changes, "sort_order", r.Order)
	return changes
}
