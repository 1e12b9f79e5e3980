package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"psisite/internal/model"
	"psisite/internal/repository"
	"psisite/internal/testutil"
	"psisite/internal/textgradient"
)

func newContent(db *gorm.DB) Content {
	return Content{
		Testimonials: NewContentService("testimonials", repository.NewContentRepository[model.Testimonial](db), nil),
		Faq:          NewContentService("faq", repository.NewContentRepository[model.FaqItem](db), nil),
		Services:     NewContentService("services", repository.NewContentRepository[model.Service](db), nil),
		Photos:       NewContentService("photo-carousel", repository.NewContentRepository[model.PhotoCarouselItem](db), nil),
		Expertise:    NewContentService("expertise-cards", repository.NewContentRepository[model.ExpertiseCard](db), nil),
	}
}

func TestPageService_Page(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	configs := NewSiteConfigService(repository.NewSiteConfigRepository(db), nil, zap.NewNop())
	content := newContent(db)

	_, err := configs.Set(ctx, "hero_section", []byte(`{"title":"Cuidando da sua (saúde mental) com carinho"}`))
	require.NoError(t, err)
	_, err = configs.Set(ctx, "sections_visibility", []byte(`{"testimonials":false}`))
	require.NoError(t, err)
	_, err = configs.Set(ctx, "sections_order", []byte(`{"faq":0.5}`))
	require.NoError(t, err)

	_, err = content.Faq.Create(ctx, &model.FaqItem{Entry: model.Entry{IsActive: true}, Question: "Como agendar?", Answer: "Pelo WhatsApp"})
	require.NoError(t, err)
	_, err = content.Faq.Create(ctx, &model.FaqItem{Question: "Rascunho", Answer: "..."})
	require.NoError(t, err)

	page, err := NewPageService(configs, content, nil).Page(ctx)
	require.NoError(t, err)

	keys := make([]string, len(page.Sections))
	for i, s := range page.Sections {
		keys[i] = s.Key
	}
	assert.Equal(t, []string{"hero", "faq", "about", "services", "photo-carousel", "contact", "inspirational"}, keys)

	assert.Equal(t, []textgradient.Segment{
		{Text: "Cuidando da sua "},
		{Text: "saúde mental", Highlighted: true},
		{Text: " com carinho"},
	}, page.Sections[0].Title)

	faq, ok := page.Sections[1].Items.([]model.FaqItem)
	require.True(t, ok)
	require.Len(t, faq, 1)
	assert.Equal(t, "Como agendar?", faq[0].Question)

	assert.Contains(t, page.Config, "hero_section")
}
