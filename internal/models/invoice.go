package models

import (
	"time"

	"gorm.io/datatypes"
)

type InvoiceState string

const (
	InvoiceStateDraft     InvoiceState = "draft"
	InvoiceStateIssued    InvoiceState = "issued"
	InvoiceStateConfirmed InvoiceState = "confirmed"
)

// SatoshisPerBTC is the number of satoshis in one bitcoin.
const SatoshisPerBTC = 100_000_000

// Contact is the from/to block printed on an invoice.
type Contact struct {
	Name     string   `json:"name,omitempty"`
	Location []string `json:"location,omitempty"`
	Email    string   `json:"email,omitempty"`
	Phone    string   `json:"phone,omitempty"`
}

type LineItem struct {
	Description string            `json:"description"`
	Price       float64           `json:"price"`
	Quantity    float64           `json:"quantity"`
	Extra       map[string]string `json:"extra,omitempty"`
}

// Invoice is stored per domain; ID is only unique inside its domain.
type Invoice struct {
	Domain    string                        `gorm:"primaryKey" json:"domain"`
	ID        string                        `gorm:"primaryKey" json:"id"`
	State     InvoiceState                  `gorm:"index" json:"state"`
	Currency  string                        `json:"currency"`
	Total     float64                       `json:"total"`
	Items     datatypes.JSONSlice[LineItem] `json:"items"`
	Satoshis  int64                         `json:"satoshis"`
	Address   string                        `json:"address"`
	From      datatypes.JSONType[Contact]   `gorm:"column:from_contact" json:"from"`
	To        datatypes.JSONType[Contact]   `gorm:"column:to_contact" json:"to"`
	Issued    time.Time                     `json:"issued"`
	Due       *time.Time                    `json:"due,omitempty"`
	CreatedAt time.Time                     `json:"created_at"`
	UpdatedAt time.Time                     `json:"updated_at"`
}

func (i *Invoice) IsConfirmed() bool {
	return i.State == InvoiceStateConfirmed
}
