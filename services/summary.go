package services

import (
	"sort"
	"strings"

	"github.com/kendall-kelly/renovation-manager-api/models"
	"github.com/shopspring/decimal"
)

// SummarizeInvoices rolls a collection of invoices up into total, paid,
// unpaid and count. An empty collection yields all zeros.
func SummarizeInvoices(invoices []models.Invoice) models.InvoiceSummary {
	summary := models.InvoiceSummary{
		Total:  decimal.Zero,
		Paid:   decimal.Zero,
		Unpaid: decimal.Zero,
	}
	for _, invoice := range invoices {
		summary.Total = summary.Total.Add(invoice.Amount)
		if invoice.IsPaid() {
			summary.Paid = summary.Paid.Add(invoice.Amount)
		} else {
			summary.Unpaid = summary.Unpaid.Add(invoice.Amount)
		}
		summary.Count++
	}
	return summary
}

// SummarizeTask summarizes the invoices owned by a task
func SummarizeTask(task models.Task) models.InvoiceSummary {
	return SummarizeInvoices(task.Invoices)
}

// SummarizePhase summarizes every invoice under a phase's tasks
func SummarizePhase(phase models.Phase) models.InvoiceSummary {
	return SummarizeInvoices(phase.Invoices())
}

// SummarizeProject summarizes every invoice reachable from a project
func SummarizeProject(project models.Project) models.InvoiceSummary {
	return SummarizeInvoices(project.Invoices())
}

// SupplierInvoices scans every project, phase and task for invoices whose
// embedded supplier name equals name. Suppliers sharing a name share a bucket.
// Results are ordered by due date, newest first.
func SupplierInvoices(projects []models.Project, name string) []models.SupplierInvoice {
	var found []models.SupplierInvoice
	for _, project := range projects {
		for _, phase := range project.Phases {
			for _, task := range phase.Tasks {
				for _, invoice := range task.Invoices {
					if invoice.Supplier.Name != name {
						continue
					}
					found = append(found, models.SupplierInvoice{
						Invoice:      invoice.Clone(),
						ProjectID:    project.ID,
						ProjectTitle: project.Title,
						PhaseTitle:   phase.Title,
						TaskTitle:    task.Title,
					})
				}
			}
		}
	}
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].DueDate.After(found[j].DueDate.Time)
	})
	return found
}

// SummarizeSupplier summarizes all invoices across the system that embed
// the supplier name
func SummarizeSupplier(projects []models.Project, name string) models.InvoiceSummary {
	located := SupplierInvoices(projects, name)
	invoices := make([]models.Invoice, len(located))
	for i, l := range located {
		invoices[i] = l.Invoice
	}
	return SummarizeInvoices(invoices)
}

// SupplierSortField names a column of the supplier overview
type SupplierSortField string

const (
	SortByName         SupplierSortField = "name"
	SortByCategory     SupplierSortField = "category"
	SortByTotal        SupplierSortField = "total"
	SortByPaid         SupplierSortField = "paid"
	SortByUnpaid       SupplierSortField = "unpaid"
	SortByInvoiceCount SupplierSortField = "invoiceCount"
)

// Valid reports whether f is a known sort field
func (f SupplierSortField) Valid() bool {
	switch f {
	case SortByName, SortByCategory, SortByTotal, SortByPaid, SortByUnpaid, SortByInvoiceCount:
		return true
	}
	return false
}

// SupplierOverviews pairs each registered supplier with its name-keyed
// summary, sorted by field. descending reverses the order.
func SupplierOverviews(suppliers []models.Supplier, projects []models.Project, field SupplierSortField, descending bool) []models.SupplierOverview {
	overviews := make([]models.SupplierOverview, len(suppliers))
	for i, supplier := range suppliers {
		overviews[i] = models.SupplierOverview{
			Supplier: supplier.Clone(),
			Summary:  SummarizeSupplier(projects, supplier.Name),
		}
	}

	compare := func(a, b models.SupplierOverview) int {
		switch field {
		case SortByCategory:
			return strings.Compare(categoryOf(a.Supplier), categoryOf(b.Supplier))
		case SortByTotal:
			return a.Summary.Total.Cmp(b.Summary.Total)
		case SortByPaid:
			return a.Summary.Paid.Cmp(b.Summary.Paid)
		case SortByUnpaid:
			return a.Summary.Unpaid.Cmp(b.Summary.Unpaid)
		case SortByInvoiceCount:
			return a.Summary.Count - b.Summary.Count
		default:
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}
	}

	sort.SliceStable(overviews, func(i, j int) bool {
		c := compare(overviews[i], overviews[j])
		if descending {
			return c > 0
		}
		return c < 0
	})
	return overviews
}

func categoryOf(s models.Supplier) string {
	if s.Category == nil {
		return ""
	}
	return string(*s.Category)
}
