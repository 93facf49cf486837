package services

import (
	"context"

	"github.com/kendall-kelly/renovation-manager-api/models"
)

// SupplierService manages the supplier directory and resolves the supplier
// snapshots embedded in invoices
type SupplierService struct {
	suppliers *SupplierRepository
	projects  *ProjectRepository
	mutator   *Mutator
}

// SupplierServiceOption is a functional option for SupplierService
type SupplierServiceOption func(*SupplierService)

// WithSupplierProjects sets the projects read by the overview and invoice history
func WithSupplierProjects(projects *ProjectRepository) SupplierServiceOption {
	return func(s *SupplierService) {
		s.projects = projects
	}
}

// WithSupplierMutator sets the mutator used for id generation
func WithSupplierMutator(m *Mutator) SupplierServiceOption {
	return func(s *SupplierService) {
		s.mutator = m
	}
}

// NewSupplierService creates a new supplier service
func NewSupplierService(suppliers *SupplierRepository, opts ...SupplierServiceOption) *SupplierService {
	s := &SupplierService{suppliers: suppliers, mutator: NewMutator()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns the supplier directory
func (s *SupplierService) List() []models.Supplier {
	return s.suppliers.All()
}

// Get returns one supplier
func (s *SupplierService) Get(id string) (models.Supplier, error) {
	return s.suppliers.GetByID(id)
}

// Create registers a supplier unless one with the same name exists, in
// which case the existing record is returned and created is false
func (s *SupplierService) Create(ctx context.Context, in models.SupplierInput) (supplier models.Supplier, created bool, err error) {
	_, err = s.suppliers.Commit(ctx, func(current []models.Supplier) ([]models.Supplier, error) {
		next, result, added, err := s.mutator.AddSupplier(current, in)
		if err != nil {
			return nil, err
		}
		supplier, created = result, added
		return next, nil
	})
	if err != nil && !models.IsPersistence(err) {
		return models.Supplier{}, false, err
	}
	return supplier, created, err
}

// Update applies a patch to a supplier. Existing invoices keep their snapshot.
func (s *SupplierService) Update(ctx context.Context, id string, patch models.SupplierPatch) (models.Supplier, error) {
	var supplier models.Supplier
	_, err := s.suppliers.Commit(ctx, func(current []models.Supplier) ([]models.Supplier, error) {
		next, updated, err := s.mutator.UpdateSupplier(current, id, patch)
		if err != nil {
			return nil, err
		}
		supplier = updated
		return next, nil
	})
	if err != nil && !models.IsPersistence(err) {
		return models.Supplier{}, err
	}
	return supplier, err
}

// Delete removes a supplier. Deleting a missing supplier succeeds without writing.
func (s *SupplierService) Delete(ctx context.Context, id string) error {
	if _, err := s.suppliers.GetByID(id); err != nil {
		return nil
	}
	_, err := s.suppliers.Commit(ctx, func(current []models.Supplier) ([]models.Supplier, error) {
		return s.mutator.DeleteSupplier(current, id), nil
	})
	return err
}

// Resolve turns an invoice's supplier reference into the snapshot to embed,
// registering a new supplier first when asked to
func (s *SupplierService) Resolve(ctx context.Context, ref models.SupplierRef) (models.SupplierSnapshot, error) {
	if err := ref.Validate(); err != nil {
		return models.SupplierSnapshot{}, err
	}
	if ref.SupplierID != "" {
		supplier, err := s.suppliers.GetByID(ref.SupplierID)
		if err != nil {
			return models.SupplierSnapshot{}, err
		}
		return supplier.Snapshot(), nil
	}

	supplier, _, err := s.Create(ctx, *ref.NewSupplier)
	if err != nil && !models.IsPersistence(err) {
		return models.SupplierSnapshot{}, err
	}
	return supplier.Snapshot(), err
}

// Overviews returns every registered supplier with its name-keyed invoice summary
func (s *SupplierService) Overviews(field SupplierSortField, descending bool) []models.SupplierOverview {
	return SupplierOverviews(s.suppliers.All(), s.allProjects(), field, descending)
}

// Invoices returns the invoice history for a registered supplier
func (s *SupplierService) Invoices(id string) ([]models.SupplierInvoice, error) {
	supplier, err := s.suppliers.GetByID(id)
	if err != nil {
		return nil, err
	}
	invoices := SupplierInvoices(s.allProjects(), supplier.Name)
	if invoices == nil {
		invoices = []models.SupplierInvoice{}
	}
	return invoices, nil
}

func (s *SupplierService) allProjects() []models.Project {
	if s.projects == nil {
		return nil
	}
	return s.projects.All()
}
