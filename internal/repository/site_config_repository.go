package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "psisite/internal/errors"
	"psisite/internal/model"
)

// SiteConfigRepository defines persistence operations for keyed JSON settings.
type SiteConfigRepository interface {
	List(ctx context.Context) ([]model.SiteConfig, error)
	FindByKey(ctx context.Context, key string) (*model.SiteConfig, error)
	Upsert(ctx context.Context, key string, value []byte) (*model.SiteConfig, error)
	Delete(ctx context.Context, key string) error
	// Mutate reads key, passes its current value (nil when unset) to fn and
	// stores fn's result, all inside one transaction.
	Mutate(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) (*model.SiteConfig, error)
}

type siteConfigRepository struct {
	db *gorm.DB
}

// NewSiteConfigRepository returns a GORM backed site config repository.
func NewSiteConfigRepository(db *gorm.DB) SiteConfigRepository {
	return &siteConfigRepository{db: db}
}

func (r *siteConfigRepository) List(ctx context.Context) ([]model.SiteConfig, error) {
	configs := make([]model.SiteConfig, 0)
	if err := r.db.WithContext(ctx).Order(clause.OrderByColumn{Column: clause.Column{Name: "key"}}).Find(&configs).Error; err != nil {
		return nil, err
	}
	return configs, nil
}

func (r *siteConfigRepository) FindByKey(ctx context.Context, key string) (*model.SiteConfig, error) {
	return findByKey(r.db.WithContext(ctx), key)
}

// Upsert inserts key or replaces its value, leaving exactly one row per key.
func (r *siteConfigRepository) Upsert(ctx context.Context, key string, value []byte) (*model.SiteConfig, error) {
	var stored *model.SiteConfig
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		stored, err = upsert(tx, key, value)
		return err
	})
	return stored, err
}

// Delete removes key. Deleting a missing key is not an error.
func (r *siteConfigRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Where(clause.Eq{Column: clause.Column{Name: "key"}, Value: key}).Delete(&model.SiteConfig{}).Error
}

func (r *siteConfigRepository) Mutate(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) (*model.SiteConfig, error) {
	var stored *model.SiteConfig
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx
		if tx.Dialector.Name() != "sqlite" {
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var current []byte
		existing, err := findByKey(q, key)
		switch {
		case err == nil:
			current = existing.Value
		case !errors.Is(err, apperrors.ErrNotFound):
			return err
		}

		next, err := fn(current)
		if err != nil {
			return err
		}
		stored, err = upsert(tx, key, next)
		return err
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

func upsert(tx *gorm.DB, key string, value []byte) (*model.SiteConfig, error) {
	row := model.SiteConfig{Key: key, Value: datatypes.JSON(value), UpdatedAt: time.Now()}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return nil, fmt.Errorf("upsert config %s: %w", key, err)
	}
	return findByKey(tx, key)
}

func findByKey(db *gorm.DB, key string) (*model.SiteConfig, error) {
	var cfg model.SiteConfig
	err := db.Where(clause.Eq{Column: clause.Column{Name: "key"}, Value: key}).First(&cfg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("config %s: %w", key, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &cfg, nil
}
