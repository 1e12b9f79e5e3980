package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"psisite/internal/cache"
	apperrors "psisite/internal/errors"
	"psisite/internal/model"
	"psisite/internal/repository"
	"psisite/internal/siteconfig"
)

// SiteConfigService manages the typed site configuration registry.
type SiteConfigService interface {
	List(ctx context.Context) ([]model.SiteConfig, error)
	Get(ctx context.Context, key string) (*model.SiteConfig, error)
	Set(ctx context.Context, key string, value []byte) (*model.SiteConfig, error)
	Delete(ctx context.Context, key string) error
	Layout(ctx context.Context) ([]siteconfig.Section, error)
	ToggleSection(ctx context.Context, section string, visible bool) ([]siteconfig.Section, error)
	MoveSection(ctx context.Context, section string, position int) ([]siteconfig.Section, error)
	MoveCredential(ctx context.Context, id, position int) (siteconfig.AboutCredentials, error)
	IndexingEnabled(ctx context.Context) (bool, error)
}

type siteConfigService struct {
	repo   repository.SiteConfigRepository
	cache  publicCache
	logger *zap.Logger
}

// NewSiteConfigService creates a new site config service.
func NewSiteConfigService(repo repository.SiteConfigRepository, cacheClient *cache.Client, logger *zap.Logger) SiteConfigService {
	return &siteConfigService{
		repo:   repo,
		cache:  publicCache{client: cacheClient},
		logger: logger,
	}
}

func (s *siteConfigService) List(ctx context.Context) ([]model.SiteConfig, error) {
	key, _ := s.cache.key(ctx, ConfigCacheKey)
	var cached []model.SiteConfig
	if s.cache.get(ctx, key, &cached) {
		return cached, nil
	}
	configs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.set(ctx, key, configs)
	return configs, nil
}

func (s *siteConfigService) Get(ctx context.Context, key string) (*model.SiteConfig, error) {
	k, err := siteconfig.Parse(key)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByKey(ctx, string(k))
}

// Set validates value against the key's registered type and upserts the
// canonical encoding.
func (s *siteConfigService) Set(ctx context.Context, key string, value []byte) (*model.SiteConfig, error) {
	k, err := siteconfig.Parse(key)
	if err != nil {
		return nil, err
	}
	canonical, err := siteconfig.Normalize(k, value)
	if err != nil {
		return nil, err
	}
	cfg, err := s.repo.Upsert(ctx, string(k), canonical)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	s.logger.Info("site config saved", zap.String("key", string(k)))
	return cfg, nil
}

// Delete resets key to its built-in default by removing the stored row.
func (s *siteConfigService) Delete(ctx context.Context, key string) error {
	k, err := siteconfig.Parse(key)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, string(k)); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Layout returns every section with its effective visibility, sorted by order.
func (s *siteConfigService) Layout(ctx context.Context) ([]siteconfig.Section, error) {
	configs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return layoutFrom(configs)
}

func layoutFrom(configs []model.SiteConfig) ([]siteconfig.Section, error) {
	visibility, _, err := siteconfig.Lookup[siteconfig.SectionsVisibility](configs, siteconfig.KeySectionsVisibility)
	if err != nil {
		return nil, err
	}
	order, _, err := siteconfig.Lookup[siteconfig.SectionsOrder](configs, siteconfig.KeySectionsOrder)
	if err != nil {
		return nil, err
	}
	return siteconfig.Layout(visibility, order), nil
}

// ToggleSection merges one section's flag into the stored visibility map
// inside a transaction, so concurrent toggles of other sections survive.
func (s *siteConfigService) ToggleSection(ctx context.Context, section string, visible bool) ([]siteconfig.Section, error) {
	_, err := s.repo.Mutate(ctx, string(siteconfig.KeySectionsVisibility), func(current []byte) ([]byte, error) {
		var visibility siteconfig.SectionsVisibility
		if err := decodeStored(current, &visibility); err != nil {
			return nil, err
		}
		next, err := siteconfig.WithVisibility(visibility, section, visible)
		if err != nil {
			return nil, err
		}
		return siteconfig.Encode(siteconfig.KeySectionsVisibility, next)
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.Layout(ctx)
}

// MoveSection moves section to position and stores a dense order for every section.
func (s *siteConfigService) MoveSection(ctx context.Context, section string, position int) ([]siteconfig.Section, error) {
	_, err := s.repo.Mutate(ctx, string(siteconfig.KeySectionsOrder), func(current []byte) ([]byte, error) {
		var order siteconfig.SectionsOrder
		if err := decodeStored(current, &order); err != nil {
			return nil, err
		}
		next, err := siteconfig.MoveSection(siteconfig.Layout(nil, order), section, position)
		if err != nil {
			return nil, err
		}
		return siteconfig.Encode(siteconfig.KeySectionsOrder, next)
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.Layout(ctx)
}

// MoveCredential reorders the about section credentials stored in config.
func (s *siteConfigService) MoveCredential(ctx context.Context, id, position int) (siteconfig.AboutCredentials, error) {
	var moved siteconfig.AboutCredentials
	_, err := s.repo.Mutate(ctx, string(siteconfig.KeyAboutCredentials), func(current []byte) ([]byte, error) {
		var creds siteconfig.AboutCredentials
		if err := decodeStored(current, &creds); err != nil {
			return nil, err
		}
		var err error
		moved, err = siteconfig.MoveCredential(creds, id, position)
		if err != nil {
			return nil, err
		}
		return siteconfig.Encode(siteconfig.KeyAboutCredentials, moved)
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return moved, nil
}

// IndexingEnabled reports whether search engines may index the site. A missing
// flag means enabled; read failures return true along with the error.
func (s *siteConfigService) IndexingEnabled(ctx context.Context) (bool, error) {
	cfg, err := s.repo.FindByKey(ctx, string(siteconfig.KeyMarketingPixels))
	if errors.Is(err, apperrors.ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return true, err
	}
	var pixels siteconfig.MarketingPixels
	if err := json.Unmarshal(cfg.Value, &pixels); err != nil {
		return true, fmt.Errorf("decode marketing pixels: %w", err)
	}
	return pixels.IndexingEnabled(), nil
}

func (s *siteConfigService) invalidate(ctx context.Context) {
	s.cache.invalidate(ctx, ConfigCacheKey, PageCacheKey)
}

func decodeStored(raw []byte, dst any) error {
	if raw == nil {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode stored config: %v: %w", err, apperrors.ErrValidation)
	}
	return nil
}
