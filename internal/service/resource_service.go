package service

import (
	"context"

	"go.uber.org/zap"

	apperrors "portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/validation"
)

// Source tells where a list was read from.
type Source string

const (
	SourceLive     Source = "live"
	SourceSnapshot Source = "snapshot"
)

// ResourceService reads and mutates one kind of portfolio content.
type ResourceService[T any] interface {
	// List returns the store's records in resource order. When the store cannot be
	// reached and the resource has a snapshot, the snapshot is returned instead.
	List(ctx context.Context) ([]T, Source, error)
	Get(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, record *T) error
	Update(ctx context.Context, id uint, record *T) (*T, error)
	Delete(ctx context.Context, id uint) error
}

type resourceService[T any] struct {
	name      string
	repo      repository.Repository[T]
	fallback  func() []T
	validator *validation.Validator
	log       *zap.Logger
}

// NewResourceService builds a resource service. fallback may be nil, in which case
// store failures on List are returned as errors.
func NewResourceService[T any](
	name string,
	repo repository.Repository[T],
	fallback func() []T,
	v *validation.Validator,
	l *zap.Logger,
) ResourceService[T] {
	return &resourceService[T]{
		name:      name,
		repo:      repo,
		fallback:  fallback,
		validator: v,
		log:       l.With(zap.String("resource", name)),
	}
}

func (s *resourceService[T]) List(ctx context.Context) ([]T, Source, error) {
	records, err := s.repo.List(ctx)
	if err == nil {
		return records, SourceLive, nil
	}
	if s.fallback != nil && apperrors.Is(err, apperrors.KindStoreUnavailable) {
		s.log.Warn("store unavailable, serving snapshot", zap.Error(err))
		return s.fallback(), SourceSnapshot, nil
	}
	return nil, "", err
}

func (s *resourceService[T]) Get(ctx context.Context, id uint) (*T, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *resourceService[T]) Create(ctx context.Context, record *T) error {
	if owned, ok := any(record).(model.ServerOwned); ok {
		owned.ResetServerFields()
	}
	if err := s.validator.Struct(record); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return err
	}
	s.log.Info("record created")
	return nil
}

func (s *resourceService[T]) Update(ctx context.Context, id uint, record *T) (*T, error) {
	if err := s.validator.Struct(record); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, id, record)
	if err != nil {
		return nil, err
	}
	s.log.Info("record updated", zap.Uint("id", id))
	return updated, nil
}

func (s *resourceService[T]) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("record deleted", zap.Uint("id", id))
	return nil
}
