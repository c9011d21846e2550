package repository

import (
	"context"
	"testing"

	"invoice-preview-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// dryRunDB builds statements against the postgres dialect without a server.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.Open("host=localhost user=test dbname=test sslmode=disable"), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db
}

func TestInvoiceUpdate_ReplacesByCompositeKey(t *testing.T) {
	repo := NewInvoiceRepository(dryRunDB(t))
	inv := &models.Invoice{
		Domain:   "acme",
		ID:       "i1",
		State:    models.InvoiceStateIssued,
		Currency: "USD",
		Total:    100,
		Satoshis: 700000,
	}

	stmt := repo.replace(context.Background(), inv).Updates(inv).Statement
	sql := stmt.SQL.String()

	assert.Contains(t, sql, `UPDATE "invoices" SET`)
	assert.Contains(t, sql, `"satoshis"=`)
	assert.Contains(t, sql, `"currency"=`)
	assert.Contains(t, sql, `"from_contact"=`)
	assert.NotContains(t, sql, `"created_at"`)
	assert.Regexp(t, `WHERE \(?domain = \$\d+ AND id = \$\d+`, sql)
	assert.Contains(t, stmt.Vars, int64(700000))
	assert.Contains(t, stmt.Vars, "acme")
	assert.Contains(t, stmt.Vars, "i1")
}

func TestInvoiceUpdate_NoRowsIsNotFound(t *testing.T) {
	repo := NewInvoiceRepository(dryRunDB(t))

	err := repo.Update(context.Background(), &models.Invoice{Domain: "acme", ID: "missing", Satoshis: 1})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestValuationLogHistory_ScopedToInvoice(t *testing.T) {
	repo := NewValuationLogRepository(dryRunDB(t))

	var logs []models.ValuationLog
	stmt := repo.history(context.Background(), "acme", "i1").Find(&logs).Statement
	sql := stmt.SQL.String()

	assert.Contains(t, sql, `FROM "valuation_logs"`)
	assert.Regexp(t, `WHERE \(?domain = \$\d+ AND invoice_id = \$\d+`, sql)
	assert.Contains(t, sql, `ORDER BY created_at ASC`)
	assert.Equal(t, []interface{}{"acme", "i1"}, stmt.Vars)
}
