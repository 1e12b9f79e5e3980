package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psisite/internal/handler"
	"psisite/internal/model"
)

func TestSeed_FillsEmptySiteOnce(t *testing.T) {
	srv := newTestServer(t, true)

	rec := srv.do(t, http.MethodPost, "/api/admin/seed", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	first := decode[handler.SeedResponse](t, rec)
	assert.Positive(t, first.Created.ConfigKeys)
	assert.Positive(t, first.Created.Faq)

	faq := decode[[]model.FaqItem](t, srv.do(t, http.MethodGet, "/api/faq", nil))
	assert.Len(t, faq, first.Created.Faq)

	second := decode[handler.SeedResponse](t, srv.do(t, http.MethodPost, "/api/admin/seed", nil))
	assert.Zero(t, second.Created.ConfigKeys)
	assert.Zero(t, second.Created.Faq)

	srv.token = ""
	assert.Equal(t, http.StatusUnauthorized, srv.do(t, http.MethodPost, "/api/admin/seed", nil).Code)
}
