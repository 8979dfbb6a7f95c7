package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"portfolio/internal/db"
	apperrors "portfolio/internal/errors"
)

// Repository is the persistence contract shared by every content resource.
type Repository[T any] interface {
	List(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, record *T) error
	Update(ctx context.Context, id uint, record *T) (*T, error)
	Delete(ctx context.Context, id uint) error
}

// Options tune a gormRepository.
type Options struct {
	// NotFound is the message of the not-found error, e.g. "Certification non trouvée".
	NotFound string
	// Order is the ORDER BY clause of List.
	Order string
	// Preload names has-many associations loaded by List and FindByID, ordered by id.
	Preload []string
}

type gormRepository[T any] struct {
	store *db.Store
	opts  Options
}

// New builds a GORM-backed repository for T.
func New[T any](store *db.Store, opts Options) Repository[T] {
	if opts.Order == "" {
		opts.Order = "id ASC"
	}
	return &gormRepository[T]{store: store, opts: opts}
}

func (r *gormRepository[T]) query(ctx context.Context) (*gorm.DB, error) {
	gdb, err := r.store.DB(ctx)
	if err != nil {
		return nil, err
	}
	for _, assoc := range r.opts.Preload {
		gdb = gdb.Preload(assoc, func(tx *gorm.DB) *gorm.DB {
			return tx.Order("id ASC")
		})
	}
	return gdb, nil
}

func (r *gormRepository[T]) List(ctx context.Context) ([]T, error) {
	gdb, err := r.query(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]T, 0)
	if err := gdb.Order(r.opts.Order).Find(&records).Error; err != nil {
		return nil, r.classify(err)
	}
	return records, nil
}

func (r *gormRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	gdb, err := r.query(ctx)
	if err != nil {
		return nil, err
	}
	var record T
	if err := gdb.First(&record, id).Error; err != nil {
		return nil, r.classify(err)
	}
	return &record, nil
}

func (r *gormRepository[T]) Create(ctx context.Context, record *T) error {
	gdb, err := r.store.DB(ctx)
	if err != nil {
		return err
	}
	if err := gdb.Omit(clause.Associations).Create(record).Error; err != nil {
		return r.classify(err)
	}
	return nil
}

// Update overwrites every column of the row with the given id, zero values included.
func (r *gormRepository[T]) Update(ctx context.Context, id uint, record *T) (*T, error) {
	gdb, err := r.store.DB(ctx)
	if err != nil {
		return nil, err
	}

	var updated T
	err = gdb.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(new(T), id).Error; err != nil {
			return err
		}
		if err := tx.Model(new(T)).Where("id = ?", id).
			Select("*").Omit("id", "created_at", clause.Associations).
			Updates(record).Error; err != nil {
			return err
		}
		return tx.First(&updated, id).Error
	})
	if err != nil {
		return nil, r.classify(err)
	}
	return &updated, nil
}

// Delete removes the row and its has-many children.
func (r *gormRepository[T]) Delete(ctx context.Context, id uint) error {
	gdb, err := r.store.DB(ctx)
	if err != nil {
		return err
	}

	err = gdb.Transaction(func(tx *gorm.DB) error {
		var record T
		if err := tx.First(&record, id).Error; err != nil {
			return err
		}
		if len(r.opts.Preload) > 0 {
			tx = tx.Select(r.opts.Preload)
		}
		return tx.Delete(&record).Error
	})
	if err != nil {
		return r.classify(err)
	}
	return nil
}

func (r *gormRepository[T]) classify(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound(r.opts.NotFound)
	}
	return db.Classify(err)
}
