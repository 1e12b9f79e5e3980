package handler_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psisite/internal/errors"
	"psisite/internal/model"
)

func TestContent_PublicListIsActiveSubset(t *testing.T) {
	srv := newTestServer(t, true)

	bodies := []map[string]interface{}{
		{"name": "Ana", "service": "Terapia Individual", "testimonial": "Mudou minha vida", "gender": "female", "order": 2},
		{"name": "João", "service": "Terapia de Casal", "testimonial": "Excelente", "gender": "male", "order": 0, "isActive": false},
		{"name": "Carla", "service": "Terapia Online", "testimonial": "Acolhedora", "gender": "female", "order": 1},
	}
	for _, b := range bodies {
		rec := srv.do(t, http.MethodPost, "/api/admin/testimonials", b)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	all := decode[[]model.Testimonial](t, srv.do(t, http.MethodGet, "/api/admin/testimonials", nil))
	public := decode[[]model.Testimonial](t, srv.do(t, http.MethodGet, "/api/testimonials", nil))

	require.Len(t, all, 3)
	require.Len(t, public, 2)
	assert.Equal(t, "Carla", public[0].Name)
	assert.Equal(t, "Ana", public[1].Name)
	adminIDs := map[uint]bool{}
	for _, item := range all {
		adminIDs[item.ID] = true
	}
	for _, item := range public {
		assert.True(t, item.IsActive)
		assert.True(t, adminIDs[item.ID])
	}
}

func TestContent_CreateAppliesDefaults(t *testing.T) {
	srv := newTestServer(t, true)

	testimonial := decode[model.Testimonial](t, srv.do(t, http.MethodPost, "/api/admin/testimonials",
		map[string]interface{}{"name": "Ana", "service": "Terapia", "testimonial": "Ótima", "gender": "female"}))
	assert.Equal(t, 5, testimonial.Rating)
	assert.True(t, testimonial.IsActive)
	assert.Equal(t, 0, testimonial.Order)

	card := decode[model.ExpertiseCard](t, srv.do(t, http.MethodPost, "/api/admin/expertise-cards",
		map[string]interface{}{"title": "Ansiedade", "description": "Tratamento de transtornos de ansiedade"}))
	assert.Equal(t, "Brain", card.Icon)
	assert.Equal(t, "#ffffff", card.BackgroundColor)
	assert.Equal(t, "#8b5cf6", card.IconColor)

	photo := decode[model.PhotoCarouselItem](t, srv.do(t, http.MethodPost, "/api/admin/photo-carousel",
		map[string]interface{}{"title": "Sala de espera", "imageUrl": "/uploads/carousel/a.jpg"}))
	assert.True(t, photo.ShowText)

	hidden := decode[model.PhotoCarouselItem](t, srv.do(t, http.MethodPost, "/api/admin/photo-carousel",
		map[string]interface{}{"title": "Jardim", "imageUrl": "/uploads/carousel/b.jpg", "showText": false, "isActive": false}))
	assert.False(t, hidden.ShowText)
	assert.False(t, hidden.IsActive)

	svc := decode[model.Service](t, srv.do(t, http.MethodPost, "/api/admin/services",
		map[string]interface{}{"title": "Terapia Individual", "description": "Sessões de 50 minutos", "icon": "Brain", "gradient": "from-pink-500 to-purple-600", "price": "R$ 150"}))
	assert.False(t, svc.ShowPrice)
	require.NotNil(t, svc.Price)
	assert.Equal(t, "R$ 150", *svc.Price)
}

func TestContent_InvalidBodies(t *testing.T) {
	srv := newTestServer(t, true)

	tests := []struct {
		name string
		path string
		body interface{}
	}{
		{"missing answer", "/api/admin/faq", map[string]interface{}{"question": "Como funciona?"}},
		{"rating out of range", "/api/admin/testimonials", map[string]interface{}{"name": "A", "service": "B", "testimonial": "C", "gender": "female", "rating": 6}},
		{"bad hex color", "/api/admin/expertise-cards", map[string]interface{}{"title": "T", "description": "D", "iconColor": "purple"}},
		{"title too long", "/api/admin/expertise-cards", map[string]interface{}{"title": strings.Repeat("a", 256), "description": "D"}},
		{"malformed json", "/api/admin/services", "{not json"},
		{"wrong type", "/api/admin/faq", map[string]interface{}{"question": 1, "answer": "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := srv.do(t, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			body := decode[errors.ErrorResponse](t, rec)
			assert.Equal(t, "invalid data", body.Error)
		})
	}
}

func TestContent_PartialUpdate(t *testing.T) {
	srv := newTestServer(t, true)

	created := decode[model.FaqItem](t, srv.do(t, http.MethodPost, "/api/admin/faq",
		map[string]interface{}{"question": "Como agendar?", "answer": "Pelo WhatsApp"}))

	rec := srv.do(t, http.MethodPut, fmt.Sprintf("/api/admin/faq/%d", created.ID), map[string]interface{}{"isActive": false})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[model.FaqItem](t, rec)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Como agendar?", updated.Question)
	assert.Equal(t, "Pelo WhatsApp", updated.Answer)

	rec = srv.do(t, http.MethodPut, "/api/admin/faq/9999", map[string]interface{}{"answer": "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = srv.do(t, http.MethodPut, "/api/admin/faq/abc", map[string]interface{}{"answer": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodPut, fmt.Sprintf("/api/admin/faq/%d", created.ID), map[string]interface{}{"answer": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContent_DeleteIsIdempotent(t *testing.T) {
	srv := newTestServer(t, true)

	created := decode[model.FaqItem](t, srv.do(t, http.MethodPost, "/api/admin/faq",
		map[string]interface{}{"question": "Q", "answer": "A"}))
	path := fmt.Sprintf("/api/admin/faq/%d", created.ID)

	assert.Equal(t, http.StatusOK, srv.do(t, http.MethodDelete, path, nil).Code)
	assert.Equal(t, http.StatusOK, srv.do(t, http.MethodDelete, path, nil).Code)
	assert.Empty(t, decode[[]model.FaqItem](t, srv.do(t, http.MethodGet, "/api/admin/faq", nil)))
}

func TestContent_ReorderRenumbersEveryItem(t *testing.T) {
	srv := newTestServer(t, true)

	var ids []uint
	for i := 0; i < 5; i++ {
		created := decode[model.Service](t, srv.do(t, http.MethodPost, "/api/admin/services", map[string]interface{}{
			"title": fmt.Sprintf("Serviço %d", i), "description": "d", "icon": "Heart", "gradient": "g", "order": i,
		}))
		ids = append(ids, created.ID)
	}

	rec := srv.do(t, http.MethodPost, "/api/admin/services/reorder", map[string]interface{}{"id": ids[4], "position": 1})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	items := decode[[]model.Service](t, rec)

	require.Len(t, items, 5)
	assert.Equal(t, []uint{ids[0], ids[4], ids[1], ids[2], ids[3]}, []uint{items[0].ID, items[1].ID, items[2].ID, items[3].ID, items[4].ID})
	seen := map[int]bool{}
	for i, item := range items {
		assert.Equal(t, i, item.Order)
		assert.False(t, seen[item.Order])
		seen[item.Order] = true
	}

	rec = srv.do(t, http.MethodPost, "/api/admin/services/reorder", map[string]interface{}{"id": 9999, "position": 0})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestContent_AdminRoutesRequireToken(t *testing.T) {
	srv := newTestServer(t, true)
	srv.token = ""

	for _, path := range []string{"/api/admin/testimonials", "/api/admin/faq", "/api/admin/config", "/api/admin/sections"} {
		assert.Equal(t, http.StatusUnauthorized, srv.do(t, http.MethodGet, path, nil).Code, path)
	}
	assert.Equal(t, http.StatusOK, srv.do(t, http.MethodGet, "/api/testimonials", nil).Code)
}

func TestContent_AdminRoutesOpenWhenAuthDisabled(t *testing.T) {
	srv := newTestServer(t, false)
	assert.Equal(t, http.StatusOK, srv.do(t, http.MethodGet, "/api/admin/faq", nil).Code)
}

func TestContent_UpdateClearsNullableFields(t *testing.T) {
	srv := newTestServer(t, true)

	testimonial := decode[model.Testimonial](t, srv.do(t, http.MethodPost, "/api/admin/testimonials", map[string]interface{}{
		"name": "Ana", "service": "Terapia", "testimonial": "Ótima", "gender": "female", "photo": "/uploads/testimonials/ana.jpg",
	}))
	require.NotNil(t, testimonial.Photo)
	path := fmt.Sprintf("/api/admin/testimonials/%d", testimonial.ID)

	rec := srv.do(t, http.MethodPut, path, map[string]interface{}{"name": "Ana Paula"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	kept := decode[model.Testimonial](t, rec)
	require.NotNil(t, kept.Photo, "absent key leaves the photo alone")
	assert.Equal(t, "/uploads/testimonials/ana.jpg", *kept.Photo)

	rec = srv.do(t, http.MethodPut, path, "{\"photo\": null}")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	cleared := decode[model.Testimonial](t, rec)
	assert.Nil(t, cleared.Photo)
	assert.Equal(t, "Ana Paula", cleared.Name)

	svc := decode[model.Service](t, srv.do(t, http.MethodPost, "/api/admin/services", map[string]interface{}{
		"title": "Terapia Individual", "description": "d", "icon": "Brain", "gradient": "g", "price": "R$ 150", "duration": "50 min",
	}))
	rec = srv.do(t, http.MethodPut, fmt.Sprintf("/api/admin/services/%d", svc.ID), "{\"price\": null}")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[model.Service](t, rec)
	assert.Nil(t, updated.Price)
	require.NotNil(t, updated.Duration)
	assert.Equal(t, "50 min", *updated.Duration)

	photo := decode[model.PhotoCarouselItem](t, srv.do(t, http.MethodPost, "/api/admin/photo-carousel", map[string]interface{}{
		"title": "Sala", "imageUrl": "/uploads/carousel/a.jpg", "description": "Sala de atendimento",
	}))
	rec = srv.do(t, http.MethodPut, fmt.Sprintf("/api/admin/photo-carousel/%d", photo.ID), "{\"description\": null}")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Nil(t, decode[model.PhotoCarouselItem](t, rec).Description)

	rec = srv.do(t, http.MethodPut, path, "{\"photo\": 7}")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
