package handler

import (
	"psisite/internal/model"
	"psisite/internal/service"
)

// TestimonialHandler serves /testimonials.
type TestimonialHandler = ContentHandler[model.Testimonial, CreateTestimonialRequest, UpdateTestimonialRequest]

// NewTestimonialHandler creates a testimonial handler.
func NewTestimonialHandler(svc service.ContentService[model.Testimonial]) *TestimonialHandler {
	return NewContentHandler[model.Testimonial, CreateTestimonialRequest, UpdateTestimonialRequest](svc)
}

// CreateTestimonialRequest represents a new client review.
type CreateTestimonialRequest struct {
	Name        string  `json:"name" validate:"required"`
	Service     string  `json:"service" validate:"required"`
	Testimonial string  `json:"testimonial" validate:"required"`
	Rating      *int    `json:"rating" validate:"omitnil,min=1,max=5"`
	Gender      string  `json:"gender" validate:"required"`
	Photo       *string `json:"photo"`
	IsActive    *bool   `json:"isActive"`
	Order       *int    `json:"order"`
}

// ToModel applies defaults: rating 5, active, order 0.
func (r CreateTestimonialRequest) ToModel() model.Testimonial {
	return model.Testimonial{
		Entry: model.Entry{
			IsActive: valueOr(r.IsActive, true),
			Order:    valueOr(r.Order, 0),
		},
		Name:        r.Name,
		Service:     r.Service,
		Testimonial: r.Testimonial,
		Rating:      valueOr(r.Rating, 5),
		Gender:      r.Gender,
		Photo:       r.Photo,
	}
}

// UpdateTestimonialRequest represents a partial testimonial update.
type UpdateTestimonialRequest struct {
	Name        *string          `json:"name" validate:"omitnil,min=1"`
	Service     *string          `json:"service" validate:"omitnil,min=1"`
	Testimonial *string          `json:"testimonial" validate:"omitnil,min=1"`
	Rating      *int             `json:"rating" validate:"omitnil,min=1,max=5"`
	Gender      *string          `json:"gender" validate:"omitnil,min=1"`
	Photo       Nullable[string] `json:"photo"`
	IsActive    *bool            `json:"isActive"`
	Order       *int             `json:"order"`
}

func (r UpdateTestimonialRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	setIfPresent(changes, "name", r.Name)
	setIfPresent(changes, "service", r.Service)
	setIfPresent(changes, "testimonial", r.Testimonial)
	setIfPresent(changes, "rating", r.Rating)
	setIfPresent(changes, "gender", r.Gender)
	setNullable(changes, "photo", r.Photo)
	setIfPresent(changes, "is_active", r.IsActive)
	setIfPresent(changes, "sort_order", r.Order)
	return changes
}
