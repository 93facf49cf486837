package models

import "github.com/shopspring/decimal"

// InvoiceSummary is the derived financial roll-up over a set of invoices.
// It is recomputed on every read and never stored on an entity.
type InvoiceSummary struct {
	Total  decimal.Decimal `json:"total"`
	Paid   decimal.Decimal `json:"paid"`
	Unpaid decimal.Decimal `json:"unpaid"`
	Count  int             `json:"count"`
}

// SupplierInvoice is an invoice located within the project tree
type SupplierInvoice struct {
	Invoice
	ProjectID    string `json:"projectId"`
	ProjectTitle string `json:"projectTitle"`
	PhaseTitle   string `json:"phaseTitle"`
	TaskTitle    string `json:"taskTitle"`
}

// SupplierOverview pairs a registered supplier with its name-keyed summary
type SupplierOverview struct {
	Supplier
	Summary InvoiceSummary `json:"summary"`
}
