package repository

import (
	"context"
	"time"

	"invoice-preview-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ValuationLogRepository struct {
	db *gorm.DB
}

func NewValuationLogRepository(db *gorm.DB) *ValuationLogRepository {
	return &ValuationLogRepository{db: db}
}

func (r *ValuationLogRepository) Append(ctx context.Context, entry *models.ValuationLog) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	return r.db.WithContext(ctx).Create(entry).Error
}

// ListForInvoice returns the refresh history of one invoice, oldest first.
func (r *ValuationLogRepository) ListForInvoice(ctx context.Context, domain, id string) ([]models.ValuationLog, error) {
	var logs []models.ValuationLog
	err := r.history(ctx, domain, id).Find(&logs).Error
	return logs, err
}

func (r *ValuationLogRepository) history(ctx context.Context, domain, id string) *gorm.DB {
	return r.db.WithContext(ctx).
		Where("domain = ? AND invoice_id = ?", domain, id).
		Order("created_at ASC")
}
