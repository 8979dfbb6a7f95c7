package service

import (
	"context"

	"go.uber.org/zap"

	"portfolio/internal/config"
	"portfolio/internal/db"
	"portfolio/internal/snapshot"
)

// SeedService fills empty content tables from the bundled snapshot.
type SeedService interface {
	Seed(ctx context.Context) (db.SeedResult, error)
}

type seedService struct {
	store *db.Store
	snap  *snapshot.Snapshot
	admin config.AdminIdentity
	log   *zap.Logger
}

// NewSeedService creates a seed service.
func NewSeedService(store *db.Store, snap *snapshot.Snapshot, admin config.AdminIdentity, l *zap.Logger) SeedService {
	return &seedService{store: store, snap: snap, admin: admin, log: l}
}

func (s *seedService) Seed(ctx context.Context) (db.SeedResult, error) {
	gdb, err := s.store.DB(ctx)
	if err != nil {
		return db.SeedResult{}, err
	}
	res, err := db.Seed(ctx, gdb, s.snap, s.admin)
	if err != nil {
		return res, db.Classify(err)
	}
	s.log.Info("content seeded",
		zap.Bool("admin", res.Admin),
		zap.Int("skill_categories", res.SkillCategories),
		zap.Int("certifications", res.Certifications),
		zap.Int("education", res.Education),
		zap.Int("projects", res.Projects),
	)
	return res, nil
}
