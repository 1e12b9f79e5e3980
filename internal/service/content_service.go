package service

import (
	"context"
	"time"

	"psisite/internal/cache"
	"psisite/internal/repository"
)

const (
	// PageCacheKey holds the composed public page.
	PageCacheKey = "page"
	// ConfigCacheKey holds the full site config list.
	ConfigCacheKey = "config:all"

	publicCacheTTL = 5 * time.Minute
)

// ContentService handles one orderable content type.
type ContentService[T repository.Orderable] interface {
	List(ctx context.Context, activeOnly bool) ([]T, error)
	Create(ctx context.Context, item *T) (*T, error)
	Update(ctx context.Context, id uint, changes map[string]interface{}) (*T, error)
	Delete(ctx context.Context, id uint) error
	Move(ctx context.Context, id uint, position int) ([]T, error)
}

type contentService[T repository.Orderable] struct {
	resource string
	repo     repository.ContentRepository[T]
	cache    publicCache
}

// NewContentService creates a content service. resource namespaces its cache entries.
func NewContentService[T repository.Orderable](resource string, repo repository.ContentRepository[T], cacheClient *cache.Client) ContentService[T] {
	return &contentService[T]{
		resource: resource,
		repo:     repo,
		cache:    publicCache{client: cacheClient},
	}
}

func (s *contentService[T]) publicKey() string {
	return "content:" + s.resource + ":active"
}

// List returns the rows in display order. The public (active only) list is
// served from cache when available.
func (s *contentService[T]) List(ctx context.Context, activeOnly bool) ([]T, error) {
	if !activeOnly {
		return s.repo.List(ctx, false)
	}

	key, _ := s.cache.key(ctx, s.publicKey())
	var cached []T
	if s.cache.get(ctx, key, &cached) {
		return cached, nil
	}
	items, err := s.repo.List(ctx, true)
	if err != nil {
		return nil, err
	}
	s.cache.set(ctx, key, items)
	return items, nil
}

func (s *contentService[T]) Create(ctx context.Context, item *T) (*T, error) {
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return item, nil
}

func (s *contentService[T]) Update(ctx context.Context, id uint, changes map[string]interface{}) (*T, error) {
	item, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return item, nil
}

func (s *contentService[T]) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Move places id at position and returns the full renumbered list.
func (s *contentService[T]) Move(ctx context.Context, id uint, position int) ([]T, error) {
	items, err := s.repo.Move(ctx, id, position)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return items, nil
}

func (s *contentService[T]) invalidate(ctx context.Context) {
	s.cache.invalidate(ctx, s.publicKey(), PageCacheKey)
}
