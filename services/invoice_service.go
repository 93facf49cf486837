package services

import (
	"context"
	"errors"

	"github.com/kendall-kelly/renovation-manager-api/models"
)

// InvoiceService adds, edits and removes invoices under project tasks,
// resolving supplier references through the supplier directory
type InvoiceService struct {
	projects  *ProjectRepository
	suppliers *SupplierService
	mutator   *Mutator
}

// InvoiceServiceOption is a functional option for InvoiceService
type InvoiceServiceOption func(*InvoiceService)

// WithProjectRepository sets the projects collection invoices live in
func WithProjectRepository(repo *ProjectRepository) InvoiceServiceOption {
	return func(s *InvoiceService) {
		s.projects = repo
	}
}

// WithSupplierService sets the supplier directory used to resolve references
func WithSupplierService(suppliers *SupplierService) InvoiceServiceOption {
	return func(s *InvoiceService) {
		s.suppliers = suppliers
	}
}

// WithInvoiceMutator sets the mutator used for id generation
func WithInvoiceMutator(m *Mutator) InvoiceServiceOption {
	return func(s *InvoiceService) {
		s.mutator = m
	}
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(opts ...InvoiceServiceOption) *InvoiceService {
	s := &InvoiceService{mutator: NewMutator()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *InvoiceService) ready() error {
	if s.projects == nil {
		return errors.New("project repository not set")
	}
	if s.suppliers == nil {
		return errors.New("supplier service not set")
	}
	return nil
}

// Add validates the invoice, resolves its supplier and appends it to the task.
// The task must exist before a new supplier is registered.
func (s *InvoiceService) Add(ctx context.Context, projectID, phaseID, taskID string, in models.InvoiceInput) (models.Invoice, error) {
	if err := s.ready(); err != nil {
		return models.Invoice{}, err
	}
	if err := s.checkTask(projectID, phaseID, taskID); err != nil {
		return models.Invoice{}, err
	}
	if err := in.Validate(); err != nil {
		return models.Invoice{}, err
	}

	snapshot, resolveErr := s.suppliers.Resolve(ctx, in.Supplier)
	if resolveErr != nil && !models.IsPersistence(resolveErr) {
		return models.Invoice{}, resolveErr
	}

	var invoice models.Invoice
	_, err := s.projects.Mutate(ctx, projectID, func(p models.Project) (models.Project, error) {
		next, added, err := s.mutator.AddInvoice(p, phaseID, taskID, in, snapshot)
		invoice = added
		return next, err
	})
	if err != nil && !models.IsPersistence(err) {
		return models.Invoice{}, err
	}
	return invoice, firstError(err, resolveErr)
}

// Update applies a patch to an invoice. A supplier reference in the patch
// re-embeds the supplier snapshot. The invoice and the patch are checked
// before a new supplier is registered.
func (s *InvoiceService) Update(ctx context.Context, projectID, phaseID, taskID, invoiceID string, patch models.InvoicePatch) (models.Invoice, error) {
	if err := s.ready(); err != nil {
		return models.Invoice{}, err
	}
	if err := s.checkInvoice(projectID, phaseID, taskID, invoiceID); err != nil {
		return models.Invoice{}, err
	}
	if err := patch.Validate(); err != nil {
		return models.Invoice{}, err
	}

	var snapshot *models.SupplierSnapshot
	var resolveErr error
	if patch.Supplier != nil {
		var resolved models.SupplierSnapshot
		resolved, resolveErr = s.suppliers.Resolve(ctx, *patch.Supplier)
		if resolveErr != nil && !models.IsPersistence(resolveErr) {
			return models.Invoice{}, resolveErr
		}
		snapshot = &resolved
	}

	var invoice models.Invoice
	_, err := s.projects.Mutate(ctx, projectID, func(p models.Project) (models.Project, error) {
		next, updated, err := s.mutator.UpdateInvoice(p, phaseID, taskID, invoiceID, patch, snapshot)
		invoice = updated
		return next, err
	})
	if err != nil && !models.IsPersistence(err) {
		return models.Invoice{}, err
	}
	return invoice, firstError(err, resolveErr)
}

// Delete removes an invoice. The project must exist; a missing invoice is a no-op.
func (s *InvoiceService) Delete(ctx context.Context, projectID, phaseID, taskID, invoiceID string) error {
	if err := s.ready(); err != nil {
		return err
	}
	project, err := s.projects.GetByID(projectID)
	if err != nil {
		return err
	}
	pi, ti, err := locateTask(project, phaseID, taskID)
	if err != nil || project.Phases[pi].Tasks[ti].FindInvoice(invoiceID) < 0 {
		return nil
	}

	_, err = s.projects.Mutate(ctx, projectID, func(p models.Project) (models.Project, error) {
		return s.mutator.DeleteInvoice(p, phaseID, taskID, invoiceID), nil
	})
	return err
}

func (s *InvoiceService) checkTask(projectID, phaseID, taskID string) error {
	project, err := s.projects.GetByID(projectID)
	if err != nil {
		return err
	}
	_, _, err = locateTask(project, phaseID, taskID)
	return err
}

func (s *InvoiceService) checkInvoice(projectID, phaseID, taskID, invoiceID string) error {
	project, err := s.projects.GetByID(projectID)
	if err != nil {
		return err
	}
	pi, ti, err := locateTask(project, phaseID, taskID)
	if err != nil {
		return err
	}
	if project.Phases[pi].Tasks[ti].FindInvoice(invoiceID) < 0 {
		return models.NewNotFoundError("invoice", invoiceID)
	}
	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
