package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "psisite/internal/errors"
	"psisite/internal/model"
	"psisite/internal/ordering"
)

// Orderable is satisfied by every content model embedding model.Entry.
type Orderable interface {
	model.Testimonial | model.FaqItem | model.Service | model.PhotoCarouselItem | model.ExpertiseCard
	ItemID() uint
}

const listOrder = "sort_order ASC, id ASC"

// ContentRepository defines persistence operations for one orderable content type.
type ContentRepository[T Orderable] interface {
	List(ctx context.Context, activeOnly bool) ([]T, error)
	FindByID(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, item *T) error
	Update(ctx context.Context, id uint, changes map[string]interface{}) (*T, error)
	Delete(ctx context.Context, id uint) error
	Move(ctx context.Context, id uint, position int) ([]T, error)
	Count(ctx context.Context) (int64, error)
}

type contentRepository[T Orderable] struct {
	db *gorm.DB
}

// NewContentRepository returns a GORM backed content repository.
func NewContentRepository[T Orderable](db *gorm.DB) ContentRepository[T] {
	return &contentRepository[T]{db: db}
}

// List returns rows ordered by sort_order, optionally only the active ones.
func (r *contentRepository[T]) List(ctx context.Context, activeOnly bool) ([]T, error) {
	q := r.db.WithContext(ctx).Order(listOrder)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	items := make([]T, 0)
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *contentRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	return findByID[T](r.db.WithContext(ctx), id)
}

func (r *contentRepository[T]) Create(ctx context.Context, item *T) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// Update applies a partial update keyed by column name and returns the stored row.
func (r *contentRepository[T]) Update(ctx context.Context, id uint, changes map[string]interface{}) (*T, error) {
	var updated *T
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findByID[T](tx, id); err != nil {
			return err
		}
		if len(changes) > 0 {
			if err := tx.Model(new(T)).Where("id = ?", id).Updates(changes).Error; err != nil {
				return err
			}
		}
		var err error
		updated, err = findByID[T](tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the row. Deleting a missing id is not an error.
func (r *contentRepository[T]) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(new(T), id).Error
}

// Move relocates one row to position and rewrites every row's sort_order to
// its new index inside a single transaction.
func (r *contentRepository[T]) Move(ctx context.Context, id uint, position int) ([]T, error) {
	var result []T
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Order(listOrder)
		if tx.Dialector.Name() != "sqlite" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var items []T
		if err := q.Find(&items).Error; err != nil {
			return err
		}

		from := ordering.IndexOf(items, func(item T) bool { return item.ItemID() == id })
		if from < 0 {
			return fmt.Errorf("move %d: %w", id, apperrors.ErrNotFound)
		}

		for i, item := range ordering.Move(items, from, position) {
			if err := tx.Model(new(T)).Where("id = ?", item.ItemID()).UpdateColumn("sort_order", i).Error; err != nil {
				return err
			}
		}

		result = make([]T, 0, len(items))
		return tx.Order(listOrder).Find(&result).Error
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *contentRepository[T]) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(new(T)).Count(&n).Error
	return n, err
}

func findByID[T any](db *gorm.DB, id uint) (*T, error) {
	var item T
	if err := db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("id %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &item, nil
}
