package services

import (
	"context"

	"github.com/kendall-kelly/renovation-manager-api/models"
)

// SupplierRepository is the durable supplier directory
type SupplierRepository struct {
	suppliers *syncedCollection[[]models.Supplier]
}

// NewSupplierRepository creates a repository persisting to store, seeded by
// seed when nothing usable is stored
func NewSupplierRepository(store KVStore, seed func() []models.Supplier) *SupplierRepository {
	c := newSyncedCollection(KeySuppliers, store, seed, cloneSuppliers)
	c.normalize = func(in []models.Supplier) []models.Supplier {
		if in == nil {
			return []models.Supplier{}
		}
		return in
	}
	return &SupplierRepository{suppliers: c}
}

func cloneSuppliers(in []models.Supplier) []models.Supplier {
	out := make([]models.Supplier, len(in))
	for i, s := range in {
		out[i] = s.Clone()
	}
	return out
}

// Hydrate loads the stored suppliers. See syncedCollection.Hydrate.
func (r *SupplierRepository) Hydrate(ctx context.Context) error {
	return r.suppliers.Hydrate(ctx)
}

// All returns the supplier directory in stored order
func (r *SupplierRepository) All() []models.Supplier {
	return r.suppliers.Get()
}

// GetByID returns the supplier with the given id
func (r *SupplierRepository) GetByID(id string) (models.Supplier, error) {
	all := r.suppliers.Get()
	if i := FindSupplierByID(all, id); i >= 0 {
		return all[i], nil
	}
	return models.Supplier{}, models.NewNotFoundError("supplier", id)
}

// Commit recomputes the directory with fn and persists it
func (r *SupplierRepository) Commit(ctx context.Context, fn func([]models.Supplier) ([]models.Supplier, error)) ([]models.Supplier, error) {
	return r.suppliers.Commit(ctx, fn)
}

// Status reports the collection's hydration source and write health
func (r *SupplierRepository) Status() CollectionStatus {
	return r.suppliers.Status()
}
