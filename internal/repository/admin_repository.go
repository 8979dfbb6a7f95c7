package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"portfolio/internal/db"
	apperrors "portfolio/internal/errors"
	"portfolio/internal/model"
)

// ErrAdminNotFound is returned when no admin matches the given email.
var ErrAdminNotFound = apperrors.NotFound("Administrateur introuvable")

// AdminRepository defines persistence operations for the admin account.
type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.AdminUser, error)
}

type adminRepository struct {
	store *db.Store
}

// NewAdminRepository creates a new admin repository.
func NewAdminRepository(store *db.Store) AdminRepository {
	return &adminRepository{store: store}
}

func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	gdb, err := r.store.DB(ctx)
	if err != nil {
		return nil, err
	}
	var admin model.AdminUser
	if err := gdb.Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, db.Classify(err)
	}
	return &admin, nil
}
