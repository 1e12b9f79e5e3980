package service

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "psisite/internal/errors"
	"psisite/internal/siteconfig"
)

// UploadPrefix is the URL prefix uploaded files are served under.
const UploadPrefix = "/uploads"

var uploadKinds = map[string]bool{
	"hero":         true,
	"testimonials": true,
	"carousel":     true,
}

// Upload is an incoming image file.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadResult describes a stored image.
type UploadResult struct {
	Success   bool   `json:"success"`
	ImagePath string `json:"imagePath"`
	Filename  string `json:"filename"`
}

// UploadService stores images on local disk.
type UploadService interface {
	Save(ctx context.Context, kind string, upload Upload) (*UploadResult, error)
}

type uploadService struct {
	dir      string
	maxBytes int64
	configs  SiteConfigService
	logger   *zap.Logger
}

// NewUploadService creates an upload service writing below dir.
func NewUploadService(dir string, maxBytes int64, configs SiteConfigService, logger *zap.Logger) UploadService {
	return &uploadService{
		dir:      dir,
		maxBytes: maxBytes,
		configs:  configs,
		logger:   logger,
	}
}

// Save validates and writes the image to <dir>/<kind>/image-<uuid><ext>,
// where ext always comes from the sniffed content type.
// Hero uploads also point the hero_image config at the new file; if that
// fails the file is removed again.
func (s *uploadService) Save(ctx context.Context, kind string, upload Upload) (*UploadResult, error) {
	if !uploadKinds[kind] {
		return nil, fmt.Errorf("upload type %q: %w", kind, apperrors.ErrInvalidUploadType)
	}
	if upload.Body == nil {
		return nil, apperrors.ErrNoFile
	}
	if upload.Size > s.maxBytes {
		return nil, fmt.Errorf("%d bytes: %w", upload.Size, apperrors.ErrFileTooLarge)
	}
	if !strings.HasPrefix(upload.ContentType, "image/") {
		return nil, fmt.Errorf("declared %q: %w", upload.ContentType, apperrors.ErrUnsupportedMediaType)
	}

	data, err := io.ReadAll(io.LimitReader(upload.Body, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %v: %w", err, apperrors.ErrUpload)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, fmt.Errorf("%d+ bytes: %w", len(data), apperrors.ErrFileTooLarge)
	}
	if len(data) == 0 {
		return nil, apperrors.ErrNoFile
	}

	detected, err := sniffImage(data, upload.Filename)
	if err != nil {
		return nil, err
	}

	filename := "image-" + uuid.NewString() + detected.Extension()
	dir := filepath.Join(s.dir, kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %v: %w", dir, err, apperrors.ErrUpload)
	}
	dst := filepath.Join(dir, filename)
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %v: %w", dst, err, apperrors.ErrUpload)
	}

	imagePath := path.Join(UploadPrefix, kind, filename)
	if kind == "hero" {
		value, err := siteconfig.Encode(siteconfig.KeyHeroImage, siteconfig.HeroImage{Path: imagePath})
		if err == nil {
			_, err = s.configs.Set(ctx, string(siteconfig.KeyHeroImage), value)
		}
		if err != nil {
			if rmErr := os.Remove(dst); rmErr != nil {
				s.logger.Warn("remove orphaned upload", zap.String("path", dst), zap.Error(rmErr))
			}
			return nil, fmt.Errorf("save hero image config: %v: %w", err, apperrors.ErrUpload)
		}
	}

	s.logger.Info("image uploaded",
		zap.String("kind", kind),
		zap.String("path", imagePath),
		zap.String("mime", detected.String()),
		zap.Int("bytes", len(data)),
	)

	return &UploadResult{
		Success:   true,
		ImagePath: imagePath,
		Filename:  filename,
	}, nil
}

// sniffImage detects the content type of data and checks it against the
// client filename. SVG is refused since it can carry script.
func sniffImage(data []byte, filename string) (*mimetype.MIME, error) {
	detected := mimetype.Detect(data)
	if !strings.HasPrefix(detected.String(), "image/") || detected.Is("image/svg+xml") {
		return nil, fmt.Errorf("sniffed %q: %w", detected.String(), apperrors.ErrUnsupportedMediaType)
	}
	ext := filepath.Ext(filename)
	if ext == "" {
		return detected, nil
	}
	if byExt := mime.TypeByExtension(ext); byExt != "" {
		claimed, _, err := mime.ParseMediaType(byExt)
		if err == nil && !detected.Is(claimed) {
			return nil, fmt.Errorf("%s holds %q: %w", ext, detected.String(), apperrors.ErrUnsupportedMediaType)
		}
	}
	return detected, nil
}
