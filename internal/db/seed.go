package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"portfolio/internal/config"
	"portfolio/internal/model"
	"portfolio/internal/snapshot"
)

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// SeedResult counts the rows inserted by Seed.
type SeedResult struct {
	Admin           bool `json:"admin"`
	SkillCategories int  `json:"skillCategories"`
	Certifications  int  `json:"certifications"`
	Education       int  `json:"education"`
	Projects        int  `json:"projects"`
}

// Seed inserts the configured admin when missing and fills every empty content table
// from the snapshot. Tables that already hold rows are left untouched.
func Seed(ctx context.Context, db *gorm.DB, snap *snapshot.Snapshot, admin config.AdminIdentity) (SeedResult, error) {
	var res SeedResult
	db = db.WithContext(ctx)

	var existing model.AdminUser
	err := db.Where("email = ?", admin.Email).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := db.Create(&model.AdminUser{
			Email:        admin.Email,
			PasswordHash: admin.PasswordHash,
			Name:         admin.Name,
		}).Error; err != nil {
			return res, fmt.Errorf("create admin user: %w", err)
		}
		res.Admin = true
	case err != nil:
		return res, fmt.Errorf("find admin user: %w", err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var err error
		if res.SkillCategories, err = seedIfEmpty(tx, &model.SkillCategory{}, snap.SkillCategories()); err != nil {
			return err
		}
		if res.Certifications, err = seedIfEmpty(tx, &model.Certification{}, snap.Certifications()); err != nil {
			return err
		}
		if res.Education, err = seedIfEmpty(tx, &model.Education{}, snap.Education()); err != nil {
			return err
		}
		if res.Projects, err = seedIfEmpty(tx, &model.Project{}, snap.Projects()); err != nil {
			return err
		}
		return nil
	})
	return res, err
}

// seedIfEmpty inserts rows when the table behind probe has no records. Associations
// (skills of a category) are created along with their parent.
func seedIfEmpty[T any](tx *gorm.DB, probe interface{}, rows []T) (int, error) {
	var count int64
	if err := tx.Model(probe).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count %T: %w", probe, err)
	}
	if count > 0 || len(rows) == 0 {
		return 0, nil
	}
	if err := tx.Create(&rows).Error; err != nil {
		return 0, fmt.Errorf("seed %T: %w", probe, err)
	}
	return len(rows), nil
}
