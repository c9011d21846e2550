package preview

import (
	"context"
	"errors"

	"invoice-preview-backend/internal/format"
	"invoice-preview-backend/internal/models"
	"invoice-preview-backend/internal/services/valuation"

	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("component", "preview")

const paymentScript = "payment"

// Request identifies a preview: who is looking at which invoice of which domain.
type Request struct {
	Viewer    string
	Domain    string
	InvoiceID string
}

type Options struct {
	Title string
	Icon  string
}

type Service struct {
	loader    *Loader
	refresher valuation.Refresher
	opts      Options
}

func NewService(loader *Loader, refresher valuation.Refresher, opts Options) *Service {
	return &Service{loader: loader, refresher: refresher, opts: opts}
}

// Preview loads the invoice, revalues it when a customer is looking at a
// payable invoice, and builds the page model. A missing invoice returns
// ErrInvoiceNotFound before anything else happens.
func (s *Service) Preview(ctx context.Context, req Request) (*ViewModel, error) {
	profile, invoice, err := s.loader.Load(ctx, req.Domain, req.InvoiceID)
	if err != nil {
		return nil, err
	}

	isOwner := req.Viewer != "" && req.Viewer == req.Domain
	decision := Decide(isOwner, invoice.IsConfirmed(), len(invoice.Items))

	invoice, err = s.refreshValuationIfNeeded(ctx, invoice, decision)
	if err != nil {
		return nil, err
	}

	return s.assemble(req.Domain, profile, invoice, decision), nil
}

// refreshValuationIfNeeded recomputes the satoshi value when the decision
// asks for it. A failing rate source keeps the cached value.
func (s *Service) refreshValuationIfNeeded(ctx context.Context, invoice *models.Invoice, d Decision) (*models.Invoice, error) {
	if !d.Refresh {
		return invoice, nil
	}

	updated, err := s.refresher.Refresh(ctx, invoice)
	if errors.Is(err, valuation.ErrRateUnavailable) {
		logger.WithError(err).WithFields(logrus.Fields{
			"domain": invoice.Domain,
			"id":     invoice.ID,
		}).Warn("rate lookup failed, showing cached satoshis")
		return invoice, nil
	}
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) assemble(domain string, profile *models.Profile, invoice *models.Invoice, d Decision) *ViewModel {
	if profile == nil {
		profile = &models.Profile{Domain: domain}
	}
	currency := invoice.Currency
	total := format.Price(invoice.Total, currency)
	totalBTC := format.BTC(invoice.Satoshis)

	items := make([]ItemView, 0, len(invoice.Items))
	for _, it := range invoice.Items {
		items = append(items, ItemView{
			Description: it.Description,
			Quantity:    it.Quantity,
			Price:       format.Price(it.Price, currency),
			Total:       format.Price(it.Price*it.Quantity, currency),
			Extra:       it.Extra,
		})
	}

	vm := &ViewModel{
		Page:     "invoice-preview",
		Title:    s.opts.Title + " - Invoice",
		ID:       invoice.ID,
		Domain:   domain,
		State:    invoice.State,
		Control:  d.Control,
		Logo:     ResolveString(profile.Logo, s.opts.Icon),
		Issued:   format.Date(invoice.Issued),
		Due:      format.DatePtr(invoice.Due),
		From:     mergeFrom(invoice.From.Data(), profile),
		To:       contactView(invoice.To.Data()),
		Items:    items,
		Total:    total,
		Satoshis: invoice.Satoshis,
		TotalBTC: totalBTC,
	}

	if invoice.IsConfirmed() {
		vm.Scripts = []string{}
		vm.Transaction = &TransactionInfo{Invoice: invoice, Total: total, TotalBTC: totalBTC}
	} else {
		vm.Scripts = []string{paymentScript}
		vm.Payment = &PaymentInfo{
			ID:       invoice.ID,
			Domain:   domain,
			Address:  invoice.Address,
			Total:    total,
			TotalBTC: totalBTC,
		}
	}
	return vm
}
