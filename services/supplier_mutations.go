package services

import (
	"strings"

	"github.com/kendall-kelly/renovation-manager-api/models"
)

// FindSupplierByName returns the index of the supplier registered under name, or -1
func FindSupplierByName(suppliers []models.Supplier, name string) int {
	for i, s := range suppliers {
		if s.Name == name {
			return i
		}
	}
	return -1
}

// FindSupplierByID returns the index of the supplier with the given id, or -1
func FindSupplierByID(suppliers []models.Supplier, id string) int {
	for i, s := range suppliers {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// AddSupplier registers a supplier under the dedup-by-name rule: when a
// supplier with the same name exists it is returned unchanged and created is
// false. Otherwise the supplier is appended, with a fresh id if none was given.
func (m *Mutator) AddSupplier(suppliers []models.Supplier, in models.SupplierInput) ([]models.Supplier, models.Supplier, bool, error) {
	if err := in.Validate(); err != nil {
		return suppliers, models.Supplier{}, false, err
	}

	name := strings.TrimSpace(in.Name)
	if i := FindSupplierByName(suppliers, name); i >= 0 {
		return suppliers, suppliers[i], false, nil
	}

	id := in.ID
	if id == "" {
		id = m.NewID()
	} else if FindSupplierByID(suppliers, id) >= 0 {
		return suppliers, models.Supplier{}, false, models.NewValidationError("id", "a supplier with this id already exists")
	}

	supplier := models.Supplier{
		ID:       id,
		Name:     name,
		Email:    in.Email,
		Phone:    in.Phone,
		Category: in.Category,
	}
	return appendCopy(suppliers, supplier), supplier, true, nil
}

// UpdateSupplier applies the patch to a registered supplier. Invoices keep
// the snapshot taken when they were created.
func (m *Mutator) UpdateSupplier(suppliers []models.Supplier, id string, patch models.SupplierPatch) ([]models.Supplier, models.Supplier, error) {
	i := FindSupplierByID(suppliers, id)
	if i < 0 {
		return suppliers, models.Supplier{}, models.NewNotFoundError("supplier", id)
	}

	supplier := suppliers[i]
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return suppliers, models.Supplier{}, models.NewValidationError("name", "is required")
		}
		if j := FindSupplierByName(suppliers, name); j >= 0 && j != i {
			return suppliers, models.Supplier{}, models.NewValidationError("name", "another supplier already uses this name")
		}
		supplier.Name = name
	}
	if patch.Email != nil {
		supplier.Email = *patch.Email
	}
	if patch.Phone != nil {
		if *patch.Phone == "" {
			supplier.Phone = nil
		} else {
			phone := *patch.Phone
			supplier.Phone = &phone
		}
	}
	if patch.Category != nil {
		if err := models.ValidateCategory(patch.Category); err != nil {
			return suppliers, models.Supplier{}, err
		}
		if *patch.Category == "" {
			supplier.Category = nil
		} else {
			category := *patch.Category
			supplier.Category = &category
		}
	}

	return replaceAt(suppliers, i, supplier), supplier, nil
}

// DeleteSupplier removes a supplier from the directory. Invoices that
// embedded it are unaffected. Unknown ids are a no-op.
func (m *Mutator) DeleteSupplier(suppliers []models.Supplier, id string) []models.Supplier {
	i := FindSupplierByID(suppliers, id)
	if i < 0 {
		return suppliers
	}
	return removeAt(suppliers, i)
}
