package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrValidation is returned when a request body does not match the entity schema.
	ErrValidation = errors.New("invalid data")
	// ErrNotFound is returned when an id or key does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrUnknownConfigKey is returned for a site config key outside the registry.
	ErrUnknownConfigKey = errors.New("unknown config key")
	// ErrUnknownSection is returned for a section key outside the page layout.
	ErrUnknownSection = errors.New("unknown section")
	// ErrUpload is returned when an uploaded file cannot be stored.
	ErrUpload = errors.New("upload failed")
	// ErrNoFile is returned when an upload request carries no image.
	ErrNoFile = errors.New("no file uploaded")
	// ErrFileTooLarge is returned when an upload exceeds the size ceiling.
	ErrFileTooLarge = errors.New("file too large")
	// ErrUnsupportedMediaType is returned when an upload is not an image.
	ErrUnsupportedMediaType = errors.New("only image files are allowed")
	// ErrInvalidUploadType is returned for an upload type outside hero/testimonials/carousel.
	ErrInvalidUploadType = errors.New("invalid upload type")
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidRefreshToken is returned when a refresh token is invalid, expired or revoked.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Wrapped errors are matched
// with errors.Is; anything unrecognised becomes an opaque 500.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrValidation):
		return NewHTTPError(http.StatusBadRequest, ErrValidation.Error(), "VALIDATION_ERROR")
	case errors.Is(err, ErrUnknownConfigKey):
		return NewHTTPError(http.StatusBadRequest, ErrUnknownConfigKey.Error(), "UNKNOWN_CONFIG_KEY")
	case errors.Is(err, ErrUnknownSection):
		return NewHTTPError(http.StatusBadRequest, ErrUnknownSection.Error(), "UNKNOWN_SECTION")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, ErrNotFound.Error(), "NOT_FOUND")
	case errors.Is(err, ErrNoFile):
		return NewHTTPError(http.StatusBadRequest, ErrNoFile.Error(), "NO_FILE")
	case errors.Is(err, ErrFileTooLarge):
		return NewHTTPError(http.StatusRequestEntityTooLarge, ErrFileTooLarge.Error(), "FILE_TOO_LARGE")
	case errors.Is(err, ErrUnsupportedMediaType):
		return NewHTTPError(http.StatusUnsupportedMediaType, ErrUnsupportedMediaType.Error(), "UNSUPPORTED_MEDIA_TYPE")
	case errors.Is(err, ErrInvalidUploadType):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidUploadType.Error(), "INVALID_UPLOAD_TYPE")
	case errors.Is(err, ErrUpload):
		return NewHTTPError(http.StatusInternalServerError, ErrUpload.Error(), "UPLOAD_FAILED")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidRefreshToken):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidRefreshToken.Error(), "INVALID_REFRESH_TOKEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

// IsUploadError reports whether err belongs to the upload failure family.
func IsUploadError(err error) bool {
	return errors.Is(err, ErrUpload) ||
		errors.Is(err, ErrNoFile) ||
		errors.Is(err, ErrFileTooLarge) ||
		errors.Is(err, ErrUnsupportedMediaType) ||
		errors.Is(err, ErrInvalidUploadType)
}
