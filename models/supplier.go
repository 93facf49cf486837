package models

// SupplierCategory classifies a supplier's trade
type SupplierCategory string

const (
	CategoryDesign       SupplierCategory = "design"
	CategoryConstruction SupplierCategory = "construction"
	CategoryElectrical   SupplierCategory = "electrical"
	CategoryPlumbing     SupplierCategory = "plumbing"
	CategoryCarpentry    SupplierCategory = "carpentry"
	CategoryFinishing    SupplierCategory = "finishing"
	CategoryHVAC         SupplierCategory = "hvac"
	CategoryOther        SupplierCategory = "other"
)

// Valid reports whether c is one of the known categories
func (c SupplierCategory) Valid() bool {
	switch c {
	case CategoryDesign, CategoryConstruction, CategoryElectrical, CategoryPlumbing,
		CategoryCarpentry, CategoryFinishing, CategoryHVAC, CategoryOther:
		return true
	}
	return false
}

// Supplier is a vendor in the supplier directory. Name is the natural key.
type Supplier struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Email    string            `json:"email"`
	Phone    *string           `json:"phone,omitempty"`
	Category *SupplierCategory `json:"category,omitempty"`
}

// Snapshot returns the contact details embedded into invoices
func (s Supplier) Snapshot() SupplierSnapshot {
	snap := SupplierSnapshot{Name: s.Name, Email: s.Email}
	if s.Phone != nil {
		phone := *s.Phone
		snap.Phone = &phone
	}
	return snap
}

// Clone returns a copy of the supplier that shares no pointers with the original
func (s Supplier) Clone() Supplier {
	out := s
	if s.Phone != nil {
		phone := *s.Phone
		out.Phone = &phone
	}
	if s.Category != nil {
		category := *s.Category
		out.Category = &category
	}
	return out
}
