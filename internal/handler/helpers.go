package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"psisite/internal/errors"
)

// ReorderRequest moves one item to a new position in its list.
type ReorderRequest struct {
	ID       uint `json:"id" validate:"required"`
	Position int  `json:"position" validate:"min=0"`
}

// SuccessResponse acknowledges writes that return no entity.
type SuccessResponse struct {
	Success bool `json:"success"`
}

func invalidData() error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: errors.ErrValidation.Error(),
		Code:  "VALIDATION_ERROR",
	})
}

// bindAndValidate decodes the body into req and runs struct validation. Any
// failure is reported as the same opaque 400.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return invalidData()
	}
	if err := c.Validate(req); err != nil {
		return invalidData()
	}
	return nil
}

// respondError maps a domain error onto the JSON error body.
func respondError(err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}

func setIfPresent[V any](changes map[string]interface{}, column string, value *V) {
	if value != nil {
		changes[column] = *value
	}
}

// Nullable is a partial-update field that tells an absent key apart from an
// explicit null. Set is true whenever the key was present in the body.
type Nullable[V any] struct {
	Set   bool
	Value *V
}

// UnmarshalJSON records presence; null leaves Value nil.
func (n *Nullable[V]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var v V
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

// setNullable writes the value, or NULL for an explicit null, when the key was sent.
func setNullable[V any](changes map[string]interface{}, column string, value Nullable[V]) {
	if !value.Set {
		return
	}
	if value.Value == nil {
		changes[column] = nil
		return
	}
	changes[column] = *value.Value
}

func valueOr[V any](value *V, def V) V {
	if value != nil {
		return *value
	}
	return def
}
