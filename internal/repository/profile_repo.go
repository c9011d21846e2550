package repository

import (
	"context"

	"invoice-preview-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetOrCreate returns the profile of a domain, creating an empty one on
// first access.
func (r *ProfileRepository) GetOrCreate(ctx context.Context, domain string) (*models.Profile, error) {
	profile := models.Profile{Domain: domain}
	err := r.db.WithContext(ctx).
		Where(models.Profile{Domain: domain}).
		FirstOrCreate(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) Save(ctx context.Context, profile *models.Profile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(profile).Error
}
