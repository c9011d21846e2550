package preview

import (
	"context"
	"errors"
	"fmt"

	"invoice-preview-backend/internal/models"
	"invoice-preview-backend/internal/repository"
)

var ErrInvoiceNotFound = errors.New("invoice not found")

type ProfileStore interface {
	GetOrCreate(ctx context.Context, domain string) (*models.Profile, error)
}

type InvoiceStore interface {
	FindOne(ctx context.Context, domain, id string) (*models.Invoice, error)
}

// Loader reads the profile and one invoice of a domain.
type Loader struct {
	profiles ProfileStore
	invoices InvoiceStore
}

func NewLoader(profiles ProfileStore, invoices InvoiceStore) *Loader {
	return &Loader{profiles: profiles, invoices: invoices}
}

// Load looks the invoice up first so an unknown id never creates a profile.
func (l *Loader) Load(ctx context.Context, domain, id string) (*models.Profile, *models.Invoice, error) {
	invoice, err := l.invoices.FindOne(ctx, domain, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil, fmt.Errorf("%w: %s/%s", ErrInvoiceNotFound, domain, id)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load invoice %s/%s: %w", domain, id, err)
	}

	profile, err := l.profiles.GetOrCreate(ctx, domain)
	if err != nil {
		return nil, nil, fmt.Errorf("load profile %s: %w", domain, err)
	}
	return profile, invoice, nil
}
