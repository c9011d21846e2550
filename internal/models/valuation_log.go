package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ValuationLog records every persisted satoshi refresh of an invoice.
type ValuationLog struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Domain           string         `gorm:"index:idx_valuation_invoice" json:"domain"`
	InvoiceID        string         `gorm:"index:idx_valuation_invoice" json:"invoice_id"`
	Currency         string         `json:"currency"`
	Total            float64        `json:"total"`
	PreviousSatoshis int64          `json:"previous_satoshis"`
	NewSatoshis      int64          `json:"new_satoshis"`
	Details          datatypes.JSON `json:"details"`
	CreatedAt        time.Time      `json:"created_at"`
}
