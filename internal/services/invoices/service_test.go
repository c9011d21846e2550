package invoices

import (
	"context"
	"testing"

	"invoice-preview-backend/internal/models"
	"invoice-preview-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	invoices   map[string]models.Invoice
	profiles   map[string]models.Profile
	valuations []models.ValuationLog
}

func newMemRepo() *memRepo {
	return &memRepo{invoices: map[string]models.Invoice{}, profiles: map[string]models.Profile{}}
}

func (m *memRepo) ListForInvoice(ctx context.Context, domain, id string) ([]models.ValuationLog, error) {
	var out []models.ValuationLog
	for _, l := range m.valuations {
		if l.Domain == domain && l.InvoiceID == id {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *memRepo) FindOne(ctx context.Context, domain, id string) (*models.Invoice, error) {
	inv, ok := m.invoices[domain+"/"+id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &inv, nil
}

func (m *memRepo) ListByDomain(ctx context.Context, domain string) ([]models.Invoice, error) {
	var out []models.Invoice
	for _, inv := range m.invoices {
		if inv.Domain == domain {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (m *memRepo) Save(ctx context.Context, inv *models.Invoice) error {
	m.invoices[inv.Domain+"/"+inv.ID] = *inv
	return nil
}

type memProfiles struct{ *memRepo }

func (m memProfiles) GetOrCreate(ctx context.Context, domain string) (*models.Profile, error) {
	p := m.profiles[domain]
	p.Domain = domain
	return &p, nil
}

func (m memProfiles) Save(ctx context.Context, p *models.Profile) error {
	m.profiles[p.Domain] = *p
	return nil
}

func TestGet_OnlyOwnDomain(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, memProfiles{repo}, repo)
	require.NoError(t, svc.Save(context.Background(), "acme", "i1", &models.Invoice{Currency: "USD"}))

	inv, err := svc.Get(context.Background(), "acme", "i1")
	require.NoError(t, err)
	assert.Equal(t, "acme", inv.Domain)
	assert.Equal(t, models.InvoiceStateDraft, inv.State)
	assert.False(t, inv.Issued.IsZero())

	_, err = svc.Get(context.Background(), "other", "i1")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Get(context.Background(), "", "i1")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestSave_ForcesSessionDomain(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, memProfiles{repo}, repo)

	err := svc.Save(context.Background(), "acme", "i2", &models.Invoice{Domain: "evil", ID: "x", Currency: "EUR"})

	require.NoError(t, err)
	_, ok := repo.invoices["acme/i2"]
	assert.True(t, ok)
	_, ok = repo.invoices["evil/x"]
	assert.False(t, ok)
}

func TestSave_Validation(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, memProfiles{repo}, repo)

	assert.ErrorIs(t, svc.Save(context.Background(), "acme", "i1", &models.Invoice{}), ErrInvalid)
	assert.ErrorIs(t, svc.Save(context.Background(), "acme", "i1", &models.Invoice{Currency: "USD", State: "paid"}), ErrInvalid)
	assert.ErrorIs(t, svc.Save(context.Background(), "acme", "i1", &models.Invoice{
		Currency: "USD",
		Items:    []models.LineItem{{Price: -1, Quantity: 1}},
	}), ErrInvalid)
	assert.ErrorIs(t, svc.Save(context.Background(), "", "i1", &models.Invoice{Currency: "USD"}), ErrUnauthorized)
}

func TestList(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, memProfiles{repo}, repo)
	require.NoError(t, svc.Save(context.Background(), "acme", "a", &models.Invoice{Currency: "USD"}))
	require.NoError(t, svc.Save(context.Background(), "acme", "b", &models.Invoice{Currency: "USD"}))
	require.NoError(t, svc.Save(context.Background(), "other", "c", &models.Invoice{Currency: "USD"}))

	list, err := svc.List(context.Background(), "acme")

	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestSaveProfile(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, memProfiles{repo}, repo)

	require.NoError(t, svc.SaveProfile(context.Background(), "acme", &models.Profile{Domain: "x", Name: "Ada"}))
	p, err := svc.Profile(context.Background(), "acme")

	require.NoError(t, err)
	assert.Equal(t, "Ada", p.Name)
	assert.Equal(t, "acme", p.Domain)
}

func TestValuations_ScopedToSessionDomain(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, memProfiles{repo}, repo)
	require.NoError(t, svc.Save(context.Background(), "acme", "i1", &models.Invoice{Currency: "USD"}))
	repo.valuations = []models.ValuationLog{
		{Domain: "acme", InvoiceID: "i1", PreviousSatoshis: 1, NewSatoshis: 2},
		{Domain: "acme", InvoiceID: "other", NewSatoshis: 9},
		{Domain: "evil", InvoiceID: "i1", NewSatoshis: 9},
	}

	logs, err := svc.Valuations(context.Background(), "acme", "i1")
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, int64(2), logs[0].NewSatoshis)

	_, err = svc.Valuations(context.Background(), "evil", "i1")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Valuations(context.Background(), "", "i1")
	assert.ErrorIs(t, err, ErrUnauthorized)
}
