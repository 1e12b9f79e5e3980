package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"psisite/internal/service"
)

// SiteHandler serves the composed public page and robots.txt.
type SiteHandler struct {
	pageService   service.PageService
	configService service.SiteConfigService
	logger        *zap.Logger
}

// NewSiteHandler creates a new site handler.
func NewSiteHandler(pageService service.PageService, configService service.SiteConfigService, logger *zap.Logger) *SiteHandler {
	return &SiteHandler{
		pageService:   pageService,
		configService: configService,
		logger:        logger,
	}
}

// Page godoc
// @Summary Composed public page
// @Description Visible sections in display order with their titles split into gradient segments and their active content.
// @Tags site
// @Produce json
// @Success 200 {object} service.Page
// @Failure 500 {object} errors.ErrorResponse
// @Router /page [get]
func (h *SiteHandler) Page(c echo.Context) error {
	page, err := h.pageService.Page(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, page)
}

// Robots serves robots.txt according to the search indexing flag.
func (h *SiteHandler) Robots(c echo.Context) error {
	indexing, err := h.configService.IndexingEnabled(c.Request().Context())
	if err != nil {
		h.logger.Warn("robots.txt falling back to allow-all", zap.Error(err))
		return c.String(http.StatusOK, service.RobotsFallback)
	}
	return c.String(http.StatusOK, service.RobotsBody(indexing, c.Scheme()+"://"+c.Request().Host))
}
