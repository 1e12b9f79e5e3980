package router

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"psisite/internal/auth"
	"psisite/internal/config"
	"psisite/internal/handler"
	"psisite/internal/logging"
	"psisite/internal/service"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Testimonials   *handler.TestimonialHandler
	Faq            *handler.FaqHandler
	Services       *handler.ServiceHandler
	PhotoCarousel  *handler.PhotoCarouselHandler
	ExpertiseCards *handler.ExpertiseCardHandler
	Config         *handler.ConfigHandler
	Upload         *handler.UploadHandler
	Auth           *handler.AuthHandler
	Site           *handler.SiteHandler
	Seed           *handler.SeedHandler
}

// Auth carries what the admin middleware needs to check bearer tokens.
type Auth struct {
	JWT    *auth.JWTService
	Tokens auth.TokenStoreInterface
}

// contentRoutes is implemented by every ContentHandler instantiation.
type contentRoutes interface {
	ListActive(c echo.Context) error
	ListAll(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
	Reorder(c echo.Context) error
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, logger *zap.Logger, authDeps Auth, h Handlers) {
	e.Use(middleware.RequestID())
	e.Use(logging.RequestLogger(logger))
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/robots.txt", h.Site.Robots)
	e.Static(service.UploadPrefix, cfg.UploadDir)

	api := e.Group("/api")

	content := map[string]contentRoutes{
		"testimonials":    h.Testimonials,
		"faq":             h.Faq,
		"services":        h.Services,
		"photo-carousel":  h.PhotoCarousel,
		"expertise-cards": h.ExpertiseCards,
	}

	// Public routes
	for resource, routes := range content {
		api.GET("/"+resource, routes.ListActive)
	}
	api.GET("/config", h.Config.List)
	api.GET("/sections", h.Config.Sections)
	api.GET("/page", h.Site.Page)

	api.POST("/admin/login", h.Auth.Login)
	api.POST("/admin/refresh", h.Auth.Refresh)
	api.POST("/admin/logout", h.Auth.Logout)

	// Secured routes (require JWT authentication unless disabled)
	admin := api.Group("/admin")
	if cfg.AdminAuthEnabled {
		admin.Use(auth.Middleware(authDeps.JWT, authDeps.Tokens))
	} else {
		logger.Warn("admin routes are not authenticated (ADMIN_AUTH_ENABLED=false)")
	}

	for resource, routes := range content {
		admin.GET("/"+resource, routes.ListAll)
		admin.POST("/"+resource, routes.Create)
		admin.POST("/"+resource+"/reorder", routes.Reorder)
		admin.PUT("/"+resource+"/:id", routes.Update)
		admin.DELETE("/"+resource+"/:id", routes.Delete)
	}

	admin.GET("/config", h.Config.List)
	admin.POST("/config", h.Config.Set)
	admin.GET("/config/:key", h.Config.Get)
	admin.DELETE("/config/:key", h.Config.Delete)

	admin.GET("/sections", h.Config.Sections)
	admin.PUT("/sections/visibility", h.Config.SetSectionVisibility)
	admin.POST("/sections/reorder", h.Config.ReorderSection)
	admin.POST("/about-credentials/reorder", h.Config.ReorderCredential)
	admin.POST("/seed", h.Seed.SeedDefaults)

	// multipart overhead on top of the image itself
	uploadLimit := fmt.Sprintf("%dK", cfg.MaxUploadBytes/1024+512)
	admin.POST("/upload/:type", h.Upload.Upload, middleware.BodyLimit(uploadLimit))
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
