package preview

import "invoice-preview-backend/internal/models"

type ContactView struct {
	Name     string
	Location []string
	Email    string
	Phone    string
}

type ItemView struct {
	Description string
	Quantity    float64
	Price       string
	Total       string
	Extra       map[string]string
}

// PaymentInfo is shown while the invoice can still be paid.
type PaymentInfo struct {
	ID       string
	Domain   string
	Address  string
	Total    string
	TotalBTC float64
}

// TransactionInfo is shown once the payment is confirmed.
type TransactionInfo struct {
	Invoice  *models.Invoice
	Total    string
	TotalBTC float64
}

// ViewModel is everything the page renderer needs. Exactly one of Payment
// and Transaction is set.
type ViewModel struct {
	Page    string
	Title   string
	Scripts []string

	ID      string
	Domain  string
	State   models.InvoiceState
	Control Control
	Logo    string
	Issued  string
	Due     string

	From  ContactView
	To    ContactView
	Items []ItemView
	Total string

	Satoshis int64
	TotalBTC float64

	Payment     *PaymentInfo
	Transaction *TransactionInfo
}
