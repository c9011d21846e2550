package repository

import (
	"context"
	"fmt"

	"invoice-preview-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// FindOne fetches a single invoice of a domain by its id.
func (r *InvoiceRepository) FindOne(ctx context.Context, domain, id string) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.WithContext(ctx).
		Where("domain = ? AND id = ?", domain, id).
		First(&invoice).Error
	if err != nil {
		return nil, translate(err)
	}
	return &invoice, nil
}

// Update replaces the stored invoice matching (domain, id) with inv.
func (r *InvoiceRepository) Update(ctx context.Context, inv *models.Invoice) error {
	result := r.replace(ctx, inv).Updates(inv)
	if result.Error != nil {
		return fmt.Errorf("update invoice %s/%s: %w", inv.Domain, inv.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// replace scopes a full-column update to the composite key of inv,
// keeping the original creation time.
func (r *InvoiceRepository) replace(ctx context.Context, inv *models.Invoice) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Where("domain = ? AND id = ?", inv.Domain, inv.ID).
		Select("*").
		Omit("created_at")
}

// Save inserts the invoice or overwrites every column of an existing one.
func (r *InvoiceRepository) Save(ctx context.Context, inv *models.Invoice) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(inv).Error
}

// ListByDomain returns the invoices of a domain, newest first.
func (r *InvoiceRepository) ListByDomain(ctx context.Context, domain string) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.WithContext(ctx).
		Where("domain = ?", domain).
		Order("issued DESC").
		Find(&invoices).Error
	return invoices, err
}
