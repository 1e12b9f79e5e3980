package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"psisite/internal/service"
)

// ConfigHandler handles site configuration, section layout and credentials.
type ConfigHandler struct {
	configService service.SiteConfigService
}

// NewConfigHandler creates a new config handler.
func NewConfigHandler(configService service.SiteConfigService) *ConfigHandler {
	return &ConfigHandler{configService: configService}
}

// SetConfigRequest upserts one configuration key.
type SetConfigRequest struct {
	Key   string          `json:"key" validate:"required"`
	Value json.RawMessage `json:"value" validate:"required"`
}

// SectionVisibilityRequest shows or hides one section.
type SectionVisibilityRequest struct {
	Section string `json:"section" validate:"required"`
	Visible *bool  `json:"visible" validate:"required"`
}

// SectionReorderRequest moves one section to a new position.
type SectionReorderRequest struct {
	Section  string `json:"section" validate:"required"`
	Position int    `json:"position" validate:"min=0"`
}

// CredentialReorderRequest moves one about credential to a new position.
type CredentialReorderRequest struct {
	ID       int `json:"id" validate:"required,min=1"`
	Position int `json:"position" validate:"min=0"`
}

// List godoc
// @Summary List every stored config key
// @Tags config
// @Produce json
// @Success 200 {array} model.SiteConfig
// @Failure 500 {object} errors.ErrorResponse
// @Router /config [get]
func (h *ConfigHandler) List(c echo.Context) error {
	configs, err := h.configService.List(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, configs)
}

// Get godoc
// @Summary Read one config key
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param key path string true "config key"
// @Success 200 {object} model.SiteConfig
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/config/{key} [get]
func (h *ConfigHandler) Get(c echo.Context) error {
	cfg, err := h.configService.Get(c.Request().Context(), c.Param("key"))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, cfg)
}

// Set godoc
// @Summary Upsert a config key
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SetConfigRequest true "key and value"
// @Success 200 {object} model.SiteConfig
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/config [post]
func (h *ConfigHandler) Set(c echo.Context) error {
	var req SetConfigRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	cfg, err := h.configService.Set(c.Request().Context(), req.Key, req.Value)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, cfg)
}

// Delete godoc
// @Summary Reset a config key to its default
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param key path string true "config key"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/config/{key} [delete]
func (h *ConfigHandler) Delete(c echo.Context) error {
	if err := h.configService.Delete(c.Request().Context(), c.Param("key")); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// Sections godoc
// @Summary Section layout in display order
// @Tags config
// @Produce json
// @Success 200 {array} siteconfig.Section
// @Router /sections [get]
func (h *ConfigHandler) Sections(c echo.Context) error {
	layout, err := h.configService.Layout(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, layout)
}

// SetSectionVisibility godoc
// @Summary Show or hide a section
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SectionVisibilityRequest true "section and flag"
// @Success 200 {array} siteconfig.Section
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/sections/visibility [put]
func (h *ConfigHandler) SetSectionVisibility(c echo.Context) error {
	var req SectionVisibilityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	layout, err := h.configService.ToggleSection(c.Request().Context(), req.Section, *req.Visible)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, layout)
}

// ReorderSection godoc
// @Summary Move a section and renumber every section
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SectionReorderRequest true "section and position"
// @Success 200 {array} siteconfig.Section
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/sections/reorder [post]
func (h *ConfigHandler) ReorderSection(c echo.Context) error {
	var req SectionReorderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	layout, err := h.configService.MoveSection(c.Request().Context(), req.Section, req.Position)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, layout)
}

// ReorderCredential godoc
// @Summary Move an about credential and renumber the list
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CredentialReorderRequest true "credential id and position"
// @Success 200 {array} siteconfig.Credential
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/about-credentials/reorder [post]
func (h *ConfigHandler) ReorderCredential(c echo.Context) error {
	var req CredentialReorderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	creds, err := h.configService.MoveCredential(c.Request().Context(), req.ID, req.Position)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, creds)
}
