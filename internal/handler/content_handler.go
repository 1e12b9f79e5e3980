package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"psisite/internal/repository"
	"psisite/internal/service"
)

// CreateRequest builds a new row, applying defaults for omitted fields.
type CreateRequest[T any] interface {
	ToModel() T
}

// UpdateRequest lists the columns a partial update changes.
type UpdateRequest interface {
	Changes() map[string]interface{}
}

// ContentHandler serves the public and admin endpoints of one content type.
// C and U are the create and update request bodies.
type ContentHandler[T repository.Orderable, C CreateRequest[T], U UpdateRequest] struct {
	service service.ContentService[T]
}

// NewContentHandler creates a handler over svc.
func NewContentHandler[T repository.Orderable, C CreateRequest[T], U UpdateRequest](svc service.ContentService[T]) *ContentHandler[T, C, U] {
	return &ContentHandler[T, C, U]{service: svc}
}

// ListActive godoc
// @Summary List active items in display order
// @Tags content
// @Produce json
// @Param resource path string true "testimonials, faq, services, photo-carousel or expertise-cards"
// @Success 200 {array} object
// @Failure 500 {object} errors.ErrorResponse
// @Router /{resource} [get]
func (h *ContentHandler[T, C, U]) ListActive(c echo.Context) error {
	items, err := h.service.List(c.Request().Context(), true)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// ListAll godoc
// @Summary List every item, active or not
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param resource path string true "content type"
// @Success 200 {array} object
// @Failure 401 {object} errors.ErrorResponse
// @Router /admin/{resource} [get]
func (h *ContentHandler[T, C, U]) ListAll(c echo.Context) error {
	items, err := h.service.List(c.Request().Context(), false)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// Create godoc
// @Summary Create an item
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param resource path string true "content type"
// @Success 201 {object} object
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/{resource} [post]
func (h *ContentHandler[T, C, U]) Create(c echo.Context) error {
	var req C
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	item := req.ToModel()
	created, err := h.service.Create(c.Request().Context(), &item)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Partially update an item
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param resource path string true "content type"
// @Param id path int true "item id"
// @Success 200 {object} object
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/{resource}/{id} [put]
func (h *ContentHandler[T, C, U]) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req U
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	updated, err := h.service.Update(c.Request().Context(), id, req.Changes())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete an item
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param resource path string true "content type"
// @Param id path int true "item id"
// @Success 200 {object} SuccessResponse
// @Router /admin/{resource}/{id} [delete]
func (h *ContentHandler[T, C, U]) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// Reorder godoc
// @Summary Move an item and renumber the whole list
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param resource path string true "content type"
// @Param request body ReorderRequest true "item and target position"
// @Success 200 {array} object
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/{resource}/reorder [post]
func (h *ContentHandler[T, C, U]) Reorder(c echo.Context) error {
	var req ReorderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	items, err := h.service.Move(c.Request().Context(), req.ID, req.Position)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, items)
}
