package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ProjectInput holds the fields accepted when creating a project
type ProjectInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	StartDate   Date     `json:"startDate"`
	EndDate     Date     `json:"endDate"`
	Location    Location `json:"location"`
}

// Validate checks required fields and date ordering
func (in ProjectInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return NewValidationError("title", "is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return NewValidationError("description", "is required")
	}
	if strings.TrimSpace(in.Location.Address) == "" {
		return NewValidationError("location.address", "is required")
	}
	if in.StartDate.IsZero() || in.EndDate.IsZero() {
		return NewValidationError("startDate", "both start and end dates are required")
	}
	return ValidateDateOrder(in.StartDate, in.EndDate)
}

// ProjectPatch lists the mutable project fields. Nil means unchanged.
type ProjectPatch struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	StartDate   *Date          `json:"startDate"`
	EndDate     *Date          `json:"endDate"`
	Location    *Location      `json:"location"`
	Status      *ProjectStatus `json:"status"`
}

// PhaseInput holds the fields accepted when adding a phase
type PhaseInput struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	StartDate   Date          `json:"startDate"`
	EndDate     Date          `json:"endDate"`
	Status      ProjectStatus `json:"status"`
}

// Validate checks the phase title, status and date ordering
func (in PhaseInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return NewValidationError("title", "is required")
	}
	if in.Status != "" && !in.Status.Valid() {
		return NewValidationError("status", "must be one of planning, in-progress, completed")
	}
	return ValidateDateOrder(in.StartDate, in.EndDate)
}

// PhasePatch lists the mutable phase fields. Nil means unchanged.
type PhasePatch struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	StartDate   *Date          `json:"startDate"`
	EndDate     *Date          `json:"endDate"`
	Status      *ProjectStatus `json:"status"`
}

// TaskInput holds the fields accepted when adding a task
type TaskInput struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status"`
	AssignedTo  *string       `json:"assignedTo"`
}

// Validate checks the task title and status
func (in TaskInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return NewValidationError("title", "is required")
	}
	if in.Status != "" && !in.Status.Valid() {
		return NewValidationError("status", "must be one of planning, in-progress, completed")
	}
	return nil
}

// TaskPatch lists the mutable task fields. Nil means unchanged.
type TaskPatch struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Status      *ProjectStatus `json:"status"`
	AssignedTo  *string        `json:"assignedTo"`
}

// SupplierRef selects the supplier for an invoice: an existing supplier by id,
// or a new one registered under the dedup-by-name rule
type SupplierRef struct {
	SupplierID  string         `json:"supplierId"`
	NewSupplier *SupplierInput `json:"newSupplier"`
}

// Validate checks that exactly one way of resolving the supplier was given
func (r SupplierRef) Validate() error {
	if r.SupplierID == "" && r.NewSupplier == nil {
		return NewValidationError("supplier", "either supplierId or newSupplier is required")
	}
	if r.SupplierID != "" && r.NewSupplier != nil {
		return NewValidationError("supplier", "supplierId and newSupplier are mutually exclusive")
	}
	if r.NewSupplier != nil {
		return r.NewSupplier.Validate()
	}
	return nil
}

// InvoiceInput holds the fields accepted when adding an invoice
type InvoiceInput struct {
	InvoiceNumber string          `json:"invoiceNumber"`
	Supplier      SupplierRef     `json:"supplier"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       Date            `json:"dueDate"`
	Status        InvoiceStatus   `json:"status"`
	AttachmentURL *string         `json:"attachmentUrl"`
}

// Validate checks the invoice fields and the supplier reference
func (in InvoiceInput) Validate() error {
	if strings.TrimSpace(in.InvoiceNumber) == "" {
		return NewValidationError("invoiceNumber", "is required")
	}
	if in.Amount.IsNegative() {
		return NewValidationError("amount", "must not be negative")
	}
	if in.DueDate.IsZero() {
		return NewValidationError("dueDate", "is required")
	}
	if in.Status != "" && !in.Status.Valid() {
		return NewValidationError("status", "must be one of draft, sent, paid, overdue")
	}
	return in.Supplier.Validate()
}

// InvoicePatch lists the mutable invoice fields. Nil means unchanged.
type InvoicePatch struct {
	InvoiceNumber *string          `json:"invoiceNumber"`
	Supplier      *SupplierRef     `json:"supplier"`
	Amount        *decimal.Decimal `json:"amount"`
	DueDate       *Date            `json:"dueDate"`
	Status        *InvoiceStatus   `json:"status"`
	AttachmentURL *string          `json:"attachmentUrl"`
}

// Validate checks the fields present in the patch, including a supplier reference
func (p InvoicePatch) Validate() error {
	if p.InvoiceNumber != nil && strings.TrimSpace(*p.InvoiceNumber) == "" {
		return NewValidationError("invoiceNumber", "is required")
	}
	if p.Amount != nil && p.Amount.IsNegative() {
		return NewValidationError("amount", "must not be negative")
	}
	if p.DueDate != nil && p.DueDate.IsZero() {
		return NewValidationError("dueDate", "is required")
	}
	if p.Status != nil && !p.Status.Valid() {
		return NewValidationError("status", "must be one of draft, sent, paid, overdue")
	}
	if p.Supplier != nil {
		return p.Supplier.Validate()
	}
	return nil
}

// SupplierInput holds the fields accepted when registering a supplier
type SupplierInput struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Email    string            `json:"email"`
	Phone    *string           `json:"phone"`
	Category *SupplierCategory `json:"category"`
}

// Validate checks the supplier name and category
func (in SupplierInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return NewValidationError("name", "is required")
	}
	return ValidateCategory(in.Category)
}

// SupplierPatch lists the mutable supplier fields. Nil means unchanged.
type SupplierPatch struct {
	Name     *string           `json:"name"`
	Email    *string           `json:"email"`
	Phone    *string           `json:"phone"`
	Category *SupplierCategory `json:"category"`
}

// ProfilePatch lists the user profile fields editable by the user
type ProfilePatch struct {
	Name               *string `json:"name"`
	Email              *string `json:"email"`
	Phone              *string `json:"phone"`
	Language           *string `json:"language"`
	Timezone           *string `json:"timezone"`
	EmailNotifications *bool   `json:"emailNotifications"`
	TwoFactor          *bool   `json:"twoFactor"`
}

// PhotoUpload describes one stored image being added to a gallery
type PhotoUpload struct {
	URL     string
	Caption *string
}

// ValidateDateOrder fails when both dates are set and end precedes start
func ValidateDateOrder(start, end Date) error {
	if !start.IsZero() && !end.IsZero() && end.Before(start.Time) {
		return NewValidationError("endDate", "end date cannot be before start date")
	}
	return nil
}

// ValidateCategory accepts an unset category or one of the known values
func ValidateCategory(c *SupplierCategory) error {
	if c == nil || *c == "" {
		return nil
	}
	if !c.Valid() {
		return NewValidationError("category", "must be one of design, construction, electrical, plumbing, carpentry, finishing, hvac, other")
	}
	return nil
}
