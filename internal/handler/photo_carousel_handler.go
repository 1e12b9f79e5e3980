package handler

import (
	"psisite/internal/model"
	"psisite/internal/service"
)

// PhotoCarouselHandler serves /photo-carousel.
type PhotoCarouselHandler = ContentHandler[model.PhotoCarouselItem, CreatePhotoRequest, UpdatePhotoRequest]

// NewPhotoCarouselHandler creates a photo carousel handler.
func NewPhotoCarouselHandler(svc service.ContentService[model.PhotoCarouselItem]) *PhotoCarouselHandler {
	return NewContentHandler[model.PhotoCarouselItem, CreatePhotoRequest, UpdatePhotoRequest](svc)
}

// CreatePhotoRequest represents a new gallery slide. The caption is shown by default.
type CreatePhotoRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	ImageURL    string  `json:"imageUrl" validate:"required"`
	ShowText    *bool   `json:"showText"`
	IsActive    *bool   `json:"isActive"`
	Order       *int    `json:"order"`
}

func (r CreatePhotoRequest) ToModel() model.PhotoCarouselItem {
	return model.PhotoCarouselItem{
		Entry: model.Entry{
			IsActive: valueOr(r.IsActive, true),
			Order:    valueOr(r.Order, 0),
		},
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		ShowText:    valueOr(r.ShowText, true),
	}
}

type UpdatePhotoRequest struct {
	Title       *string          `json:"title" validate:"omitnil,min=1"`
	Description Nullable[string] `json:"description"`
	ImageURL    *string          `json:"imageUrl" validate:"omitnil,min=1"`
	ShowText    *bool            `json:"showText"`
	IsActive    *bool            `json:"isActive"`
	Order       *int             `json:"order"`
}

func (r UpdatePhotoRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	setIfPresent(changes, "title", r.Title)
	setNullable(changes, "description", r.Description)
	setIfPresent(changes, "image_url", r.ImageURL)
	setIfPresent(changes, "show_text", r.ShowText)
	setIfPresent(changes, "is_active", r.IsActive)
	setIfPresent(changes, "sort_order", r.Order)
	return changes
}
