package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"psisite/internal/auth"
	"psisite/internal/config"
	"psisite/internal/handler"
	"psisite/internal/model"
	"psisite/internal/repository"
	"psisite/internal/router"
	"psisite/internal/seed"
	"psisite/internal/service"
	"psisite/internal/testutil"
)

type testServer struct {
	e         *echo.Echo
	uploadDir string
	token     string
}

func newTestServer(t *testing.T, authEnabled bool) *testServer {
	t.Helper()

	db := testutil.NewDB(t)
	logger := zap.NewNop()
	cfg := &config.Config{
		UploadDir:        t.TempDir(),
		MaxUploadBytes:   5 << 20,
		AdminAuthEnabled: authEnabled,
	}

	configs := service.NewSiteConfigService(repository.NewSiteConfigRepository(db), nil, logger)
	content := service.Content{
		Testimonials: service.NewContentService("testimonials", repository.NewContentRepository[model.Testimonial](db), nil),
		Faq:          service.NewContentService("faq", repository.NewContentRepository[model.FaqItem](db), nil),
		Services:     service.NewContentService("services", repository.NewContentRepository[model.Service](db), nil),
		Photos:       service.NewContentService("photo-carousel", repository.NewContentRepository[model.PhotoCarouselItem](db), nil),
		Expertise:    service.NewContentService("expertise-cards", repository.NewContentRepository[model.ExpertiseCard](db), nil),
	}

	jwtService := auth.NewJWTService("test-secret")
	tokenStore := auth.NewTokenStore(nil)
	authService := service.NewAuthService(repository.NewAdminUserRepository(db), jwtService, tokenStore, logger)
	_, err := authService.EnsureAdmin(context.Background(), "admin", "s3cret")
	require.NoError(t, err)

	seedContent, err := seed.Load("")
	require.NoError(t, err)

	e := echo.New()
	router.Register(e, cfg, logger, router.Auth{JWT: jwtService, Tokens: tokenStore}, router.Handlers{
		Testimonials:   handler.NewTestimonialHandler(content.Testimonials),
		Faq:            handler.NewFaqHandler(content.Faq),
		Services:       handler.NewServiceHandler(content.Services),
		PhotoCarousel:  handler.NewPhotoCarouselHandler(content.Photos),
		ExpertiseCards: handler.NewExpertiseCardHandler(content.Expertise),
		Config:         handler.NewConfigHandler(configs),
		Upload:         handler.NewUploadHandler(service.NewUploadService(cfg.UploadDir, cfg.MaxUploadBytes, configs, logger)),
		Auth:           handler.NewAuthHandler(authService),
		Site:           handler.NewSiteHandler(service.NewPageService(configs, content, nil), configs, logger),
		Seed:           handler.NewSeedHandler(seed.NewSeeder(configs, content, logger), seedContent),
	})

	srv := &testServer{e: e, uploadDir: cfg.UploadDir}
	if authEnabled {
		rec := srv.do(t, http.MethodPost, "/api/admin/login", map[string]string{"username": "admin", "password": "s3cret"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var login handler.LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
		srv.token = login.AccessToken
	}
	return srv
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if s.token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+s.token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) upload(t *testing.T, kind, filename, contentType string, data []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload/"+kind, &buf)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	if s.token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+s.token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}
