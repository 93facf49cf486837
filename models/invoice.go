package models

import "github.com/shopspring/decimal"

// SupplierSnapshot is the supplier contact embedded in an invoice by value.
// Renaming the supplier later does not change historical invoices.
type SupplierSnapshot struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

// Invoice is a billable record from a supplier, owned by one task
type Invoice struct {
	ID            string           `json:"id"`
	InvoiceNumber string           `json:"invoiceNumber"`
	Supplier      SupplierSnapshot `json:"supplier"`
	Amount        decimal.Decimal  `json:"amount"`
	DueDate       Date             `json:"dueDate"`
	Status        InvoiceStatus    `json:"status"`
	AttachmentURL *string          `json:"attachmentUrl,omitempty"`
}

// IsPaid reports whether the invoice counts toward the paid bucket
func (i Invoice) IsPaid() bool {
	return i.Status == InvoicePaid
}

// Clone returns a copy of the invoice that shares no pointers with the original
func (i Invoice) Clone() Invoice {
	out := i
	out.Supplier = i.Supplier.Clone()
	if i.AttachmentURL != nil {
		url := *i.AttachmentURL
		out.AttachmentURL = &url
	}
	return out
}

// Clone returns a copy of the snapshot that shares no pointers with the original
func (s SupplierSnapshot) Clone() SupplierSnapshot {
	out := s
	if s.Phone != nil {
		phone := *s.Phone
		out.Phone = &phone
	}
	return out
}
