package handler

import (
	"psisite/internal/model"
	"psisite/internal/service"
)

// FaqHandler serves /faq.
type FaqHandler = ContentHandler[model.FaqItem, CreateFaqRequest, UpdateFaqRequest]

// NewFaqHandler creates a FAQ handler.
func NewFaqHandler(svc service.ContentService[model.FaqItem]) *FaqHandler {
	return NewContentHandler[model.FaqItem, CreateFaqRequest, UpdateFaqRequest](svc)
}

type CreateFaqRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
	IsActive *bool  `json:"isActive"`
	Order    *int   `json:"order"`
}

func (r CreateFaqRequest) ToModel() model.FaqItem {
	return model.FaqItem{
		Entry: model.Entry{
			IsActive: valueOr(r.IsActive, true),
			Order:    valueOr(r.Order, 0),
		},
		Question: r.Question,
		Answer:   r.Answer,
	}
}

type UpdateFaqRequest struct {
	Question *string `json:"question" validate:"omitnil,min=1"`
	Answer   *string `json:"answer" validate:"omitnil,min=1"`
	IsActive *bool   `json:"isActive"`
	Order    *int    `json:"order"`
}

func (r UpdateFaqRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	setIfPresent(changes, "question", r.Question)
	setIfPresent(changes, "answer", r.Answer)
	setIfPresent(changes, "is_active", r.IsActive)
	setIfPresent(changes, "sort_order", r.Order)
	return changes
}
