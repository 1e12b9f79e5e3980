package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "psisite/internal/errors"
	"psisite/internal/service"
)

// UploadHandler accepts image uploads for the admin dashboard.
type UploadHandler struct {
	uploadService service.UploadService
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// Upload godoc
// @Summary Upload an image
// @Description Stores the image under /uploads/{type}/. Hero uploads also update the hero_image config.
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param type path string true "hero, testimonials or carousel"
// @Param image formData file true "image file, at most 5MB"
// @Success 200 {object} service.UploadResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 413 {object} errors.ErrorResponse
// @Failure 415 {object} errors.ErrorResponse
// @Router /admin/upload/{type} [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return respondError(apperrors.ErrNoFile)
		}
		return respondError(apperrors.ErrUpload)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return respondError(apperrors.ErrUpload)
	}
	defer file.Close()

	result, err := h.uploadService.Save(c.Request().Context(), c.Param("type"), service.Upload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Size:        fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, result)
}
