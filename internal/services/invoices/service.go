package invoices

import (
	"context"
	"errors"
	"fmt"
	"time"

	"invoice-preview-backend/internal/models"
	"invoice-preview-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("component", "invoices")

var (
	ErrNotFound     = errors.New("invoice not found")
	ErrUnauthorized = errors.New("no session")
	ErrInvalid      = errors.New("invalid invoice")
)

// InvoiceRepository is the part of repository.InvoiceRepository used here.
type InvoiceRepository interface {
	FindOne(ctx context.Context, domain, id string) (*models.Invoice, error)
	ListByDomain(ctx context.Context, domain string) ([]models.Invoice, error)
	Save(ctx context.Context, inv *models.Invoice) error
}

type ProfileRepository interface {
	GetOrCreate(ctx context.Context, domain string) (*models.Profile, error)
	Save(ctx context.Context, profile *models.Profile) error
}

type ValuationLogRepository interface {
	ListForInvoice(ctx context.Context, domain, id string) ([]models.ValuationLog, error)
}

// Service serves the signed-in user's own invoices and profile. The
// session user is always the domain being read or written.
type Service struct {
	invoices   InvoiceRepository
	profiles   ProfileRepository
	valuations ValuationLogRepository
}

func NewService(invoices InvoiceRepository, profiles ProfileRepository, valuations ValuationLogRepository) *Service {
	return &Service{invoices: invoices, profiles: profiles, valuations: valuations}
}

func (s *Service) Get(ctx context.Context, username, id string) (*models.Invoice, error) {
	if username == "" {
		return nil, ErrUnauthorized
	}
	inv, err := s.invoices.FindOne(ctx, username, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return inv, err
}

// Valuations returns the satoshi refresh history of one of the session
// user's invoices.
func (s *Service) Valuations(ctx context.Context, username, id string) ([]models.ValuationLog, error) {
	if _, err := s.Get(ctx, username, id); err != nil {
		return nil, err
	}
	logs, err := s.valuations.ListForInvoice(ctx, username, id)
	if err != nil {
		return nil, fmt.Errorf("list valuations %s/%s: %w", username, id, err)
	}
	return logs, nil
}

func (s *Service) List(ctx context.Context, username string) ([]models.Invoice, error) {
	if username == "" {
		return nil, ErrUnauthorized
	}
	return s.invoices.ListByDomain(ctx, username)
}

// Save stores inv under the session user's domain with the given id.
func (s *Service) Save(ctx context.Context, username, id string, inv *models.Invoice) error {
	if username == "" {
		return ErrUnauthorized
	}
	if id == "" || inv.Currency == "" {
		return fmt.Errorf("%w: id and currency are required", ErrInvalid)
	}
	switch inv.State {
	case "":
		inv.State = models.InvoiceStateDraft
	case models.InvoiceStateDraft, models.InvoiceStateIssued, models.InvoiceStateConfirmed:
	default:
		return fmt.Errorf("%w: unknown state %q", ErrInvalid, inv.State)
	}
	for _, it := range inv.Items {
		if it.Quantity < 0 || it.Price < 0 {
			return fmt.Errorf("%w: negative price or quantity", ErrInvalid)
		}
	}

	inv.Domain = username
	inv.ID = id
	if inv.Issued.IsZero() {
		inv.Issued = time.Now()
	}
	if err := s.invoices.Save(ctx, inv); err != nil {
		return fmt.Errorf("save invoice %s/%s: %w", username, id, err)
	}
	logger.WithFields(logrus.Fields{"domain": username, "id": id, "state": inv.State}).Info("invoice saved")
	return nil
}

func (s *Service) Profile(ctx context.Context, username string) (*models.Profile, error) {
	if username == "" {
		return nil, ErrUnauthorized
	}
	return s.profiles.GetOrCreate(ctx, username)
}

func (s *Service) SaveProfile(ctx context.Context, username string, profile *models.Profile) error {
	if username == "" {
		return ErrUnauthorized
	}
	profile.Domain = username
	return s.profiles.Save(ctx, profile)
}
