package handler

import (
	"psisite/internal/model"
	"psisite/internal/service"
)

// ServiceHandler serves /services, the practice's offerings.
type ServiceHandler = ContentHandler[model.Service, CreateServiceRequest, UpdateServiceRequest]

// NewServiceHandler creates a services handler.
func NewServiceHandler(svc service.ContentService[model.Service]) *ServiceHandler {
	return NewContentHandler[model.Service, CreateServiceRequest, UpdateServiceRequest](svc)
}

// CreateServiceRequest represents a new offering. Price and duration are
// free display text and hidden unless their show flag is set.
type CreateServiceRequest struct {
	Title        string  `json:"title" validate:"required"`
	Description  string  `json:"description" validate:"required"`
	Icon         string  `json:"icon" validate:"required"`
	Gradient     string  `json:"gradient" validate:"required"`
	Price        *string `json:"price"`
	Duration     *string `json:"duration"`
	ShowPrice    *bool   `json:"showPrice"`
	ShowDuration *bool   `json:"showDuration"`
	IsActive     *bool   `json:"isActive"`
	Order        *int    `json:"order"`
}

func (r CreateServiceRequest) ToModel() model.Service {
	return model.Service{
		Entry: model.Entry{
			IsActive: valueOr(r.IsActive, true),
			Order:    valueOr(r.Order, 0),
		},
		Title:        r.Title,
		Description:  r.Description,
		Icon:         r.Icon,
		Gradient:     r.Gradient,
		Price:        r.Price,
		Duration:     r.Duration,
		ShowPrice:    valueOr(r.ShowPrice, false),
		ShowDuration: valueOr(r.ShowDuration, false),
	}
}

type UpdateServiceRequest struct {
	Title        *string          `json:"title" validate:"omitnil,min=1"`
	Description  *string          `json:"description" validate:"omitnil,min=1"`
	Icon         *string          `json:"icon" validate:"omitnil,min=1"`
	Gradient     *string          `json:"gradient" validate:"omitnil,min=1"`
	Price        Nullable[string] `json:"price"`
	Duration     Nullable[string] `json:"duration"`
	ShowPrice    *bool            `json:"showPrice"`
	ShowDuration *bool            `json:"showDuration"`
	IsActive     *bool            `json:"isActive"`
	Order        *int             `json:"order"`
}

func (r UpdateServiceRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	setIfPresent(changes, "title", r.Title)
	setIfPresent(changes, "description", r.Description)
	setIfPresent(changes, "icon", r.Icon)
	setIfPresent(changes, "gradient", r.Gradient)
	setNullable(changes, "price", r.Price)
	setNullable(changes, "duration", r.Duration)
	setIfPresent(changes, "show_price", r.ShowPrice)
	setIfPresent(changes, "show_duration", r.ShowDuration)
	setIfPresent(changes, "is_active", r.IsActive)
	setIfPresent(changes, "sort_order", r.Order)
	return changes
}
