package services

import (
	"strings"

	"github.com/kendall-kelly/renovation-manager-api/models"
)

// AddInvoice appends an invoice to a task. The supplier has already been
// resolved by the caller; its contact details are embedded by value.
func (m *Mutator) AddInvoice(p models.Project, phaseID, taskID string, in models.InvoiceInput, supplier models.SupplierSnapshot) (models.Project, models.Invoice, error) {
	pi, ti, err := locateTask(p, phaseID, taskID)
	if err != nil {
		return p, models.Invoice{}, err
	}
	if err := in.Validate(); err != nil {
		return p, models.Invoice{}, err
	}
	if strings.TrimSpace(supplier.Name) == "" {
		return p, models.Invoice{}, models.NewValidationError("supplier.name", "is required")
	}

	status := in.Status
	if status == "" {
		status = models.InvoiceDraft
	}
	invoice := models.Invoice{
		ID:            m.NewID(),
		InvoiceNumber: strings.TrimSpace(in.InvoiceNumber),
		Supplier:      supplier.Clone(),
		Amount:        in.Amount,
		DueDate:       in.DueDate,
		Status:        status,
		AttachmentURL: in.AttachmentURL,
	}

	task := p.Phases[pi].Tasks[ti]
	task.Invoices = appendCopy(task.Invoices, invoice)
	return withTask(p, pi, ti, task), invoice, nil
}

// UpdateInvoice applies the patch to one invoice. When supplier is non-nil
// the embedded snapshot is replaced with it.
func (m *Mutator) UpdateInvoice(p models.Project, phaseID, taskID, invoiceID string, patch models.InvoicePatch, supplier *models.SupplierSnapshot) (models.Project, models.Invoice, error) {
	pi, ti, err := locateTask(p, phaseID, taskID)
	if err != nil {
		return p, models.Invoice{}, err
	}
	task := p.Phases[pi].Tasks[ti]
	ii := task.FindInvoice(invoiceID)
	if ii < 0 {
		return p, models.Invoice{}, models.NewNotFoundError("invoice", invoiceID)
	}

	invoice := task.Invoices[ii]
	if patch.InvoiceNumber != nil {
		if strings.TrimSpace(*patch.InvoiceNumber) == "" {
			return p, models.Invoice{}, models.NewValidationError("invoiceNumber", "is required")
		}
		invoice.InvoiceNumber = strings.TrimSpace(*patch.InvoiceNumber)
	}
	if patch.Amount != nil {
		if patch.Amount.IsNegative() {
			return p, models.Invoice{}, models.NewValidationError("amount", "must not be negative")
		}
		invoice.Amount = *patch.Amount
	}
	if patch.DueDate != nil {
		if patch.DueDate.IsZero() {
			return p, models.Invoice{}, models.NewValidationError("dueDate", "is required")
		}
		invoice.DueDate = *patch.DueDate
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return p, models.Invoice{}, models.NewValidationError("status", "must be one of draft, sent, paid, overdue")
		}
		invoice.Status = *patch.Status
	}
	if patch.AttachmentURL != nil {
		if *patch.AttachmentURL == "" {
			invoice.AttachmentURL = nil
		} else {
			url := *patch.AttachmentURL
			invoice.AttachmentURL = &url
		}
	}
	if supplier != nil {
		if strings.TrimSpace(supplier.Name) == "" {
			return p, models.Invoice{}, models.NewValidationError("supplier.name", "is required")
		}
		invoice.Supplier = supplier.Clone()
	}

	task.Invoices = replaceAt(task.Invoices, ii, invoice)
	return withTask(p, pi, ti, task), invoice, nil
}

// DeleteInvoice removes an invoice from a task. Unknown ids are a no-op.
func (m *Mutator) DeleteInvoice(p models.Project, phaseID, taskID, invoiceID string) models.Project {
	pi, ti, err := locateTask(p, phaseID, taskID)
	if err != nil {
		return p
	}
	task := p.Phases[pi].Tasks[ti]
	ii := task.FindInvoice(invoiceID)
	if ii < 0 {
		return p
	}
	task.Invoices = removeAt(task.Invoices, ii)
	return withTask(p, pi, ti, task)
}
