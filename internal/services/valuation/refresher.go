package valuation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"invoice-preview-backend/internal/models"
	"invoice-preview-backend/internal/services/rates"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

var logger = logrus.WithField("component", "valuation")

// ErrRateUnavailable wraps any failure of the rate source. Nothing has been
// written when it is returned.
var ErrRateUnavailable = errors.New("rate unavailable")

type InvoiceWriter interface {
	Update(ctx context.Context, inv *models.Invoice) error
}

type LogAppender interface {
	Append(ctx context.Context, entry *models.ValuationLog) error
}

// Refresher recomputes and persists the satoshi value of an invoice.
type Refresher interface {
	Refresh(ctx context.Context, inv *models.Invoice) (*models.Invoice, error)
}

type Service struct {
	rates    rates.Converter
	invoices InvoiceWriter
	logs     LogAppender

	dedupe bool
	group  singleflight.Group
}

type Option func(*Service)

// WithDedupe collapses concurrent refreshes of the same invoice into a
// single rate lookup and write.
func WithDedupe(enabled bool) Option {
	return func(s *Service) { s.dedupe = enabled }
}

// WithLog records every persisted refresh. Append failures are logged only.
func WithLog(logs LogAppender) Option {
	return func(s *Service) { s.logs = logs }
}

func NewService(converter rates.Converter, invoices InvoiceWriter, opts ...Option) *Service {
	s := &Service{rates: converter, invoices: invoices}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Refresh asks the rate source for the current satoshi value of inv.Total
// and stores a copy of inv carrying it. inv itself is never modified.
// With dedupe the shared refresh runs detached from the cancellation of
// the request that started it.
func (s *Service) Refresh(ctx context.Context, inv *models.Invoice) (*models.Invoice, error) {
	if !s.dedupe {
		return s.refresh(ctx, inv)
	}

	shared := context.WithoutCancel(ctx)
	v, err, joined := s.group.Do(inv.Domain+"/"+inv.ID, func() (interface{}, error) {
		return s.refresh(shared, inv)
	})
	if err != nil {
		return nil, err
	}
	if joined {
		logger.WithFields(logrus.Fields{"domain": inv.Domain, "id": inv.ID}).Debug("joined in-flight refresh")
	}
	updated := *v.(*models.Invoice)
	return &updated, nil
}

func (s *Service) refresh(ctx context.Context, inv *models.Invoice) (*models.Invoice, error) {
	sats, err := s.rates.Satoshis(ctx, inv.Total, inv.Currency)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRateUnavailable, err)
	}

	updated := *inv
	updated.Satoshis = sats
	if err := s.invoices.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("store refreshed invoice %s/%s: %w", inv.Domain, inv.ID, err)
	}

	logger.WithFields(logrus.Fields{
		"domain":   inv.Domain,
		"id":       inv.ID,
		"previous": inv.Satoshis,
		"satoshis": sats,
	}).Info("invoice valuation refreshed")

	s.record(ctx, inv, sats)
	return &updated, nil
}

func (s *Service) record(ctx context.Context, inv *models.Invoice, sats int64) {
	if s.logs == nil {
		return
	}

	details, _ := json.Marshal(map[string]interface{}{
		"items":  len(inv.Items),
		"state":  inv.State,
		"delta":  sats - inv.Satoshis,
		"dedupe": s.dedupe,
	})
	entry := &models.ValuationLog{
		Domain:           inv.Domain,
		InvoiceID:        inv.ID,
		Currency:         inv.Currency,
		Total:            inv.Total,
		PreviousSatoshis: inv.Satoshis,
		NewSatoshis:      sats,
		Details:          details,
	}
	if err := s.logs.Append(ctx, entry); err != nil {
		logger.WithError(err).WithField("id", inv.ID).Warn("failed to append valuation log")
	}
}
