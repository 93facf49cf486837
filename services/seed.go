package services

import (
	"log"

	"github.com/kendall-kelly/renovation-manager-api/models"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// seedPasswordCost is lowered by tests to keep hashing fast
var seedPasswordCost = bcrypt.DefaultCost

// seedOwner owns every seeded project
var seedOwner = models.ProjectOwner{ID: "1", Name: "Admin User", Email: "admin@example.com"}

func strPtr(s string) *string { return &s }

func seedInvoice(id, number, supplier, email, phone string, amount int64, due string, status models.InvoiceStatus) models.Invoice {
	snapshot := models.SupplierSnapshot{Name: supplier, Email: email}
	if phone != "" {
		snapshot.Phone = strPtr(phone)
	}
	return models.Invoice{
		ID:            id,
		InvoiceNumber: number,
		Supplier:      snapshot,
		Amount:        decimal.NewFromInt(amount),
		DueDate:       models.MustParseDate(due),
		Status:        status,
	}
}

func seedTask(id, title, description string, status models.ProjectStatus, assignedTo string, invoices ...models.Invoice) models.Task {
	return models.Task{
		ID:          id,
		Title:       title,
		Description: description,
		Status:      status,
		AssignedTo:  strPtr(assignedTo),
		Invoices:    invoices,
	}
}

func seedPhase(id, title, description, start, end string, status models.ProjectStatus, tasks ...models.Task) models.Phase {
	return models.Phase{
		ID:          id,
		Title:       title,
		Description: description,
		StartDate:   models.MustParseDate(start),
		EndDate:     models.MustParseDate(end),
		Status:      status,
		Tasks:       tasks,
	}
}

// SeedProjects returns the demo projects used when nothing is stored
func SeedProjects() []models.Project {
	project := func(id, title, description, start, end, address string, lat, lng float64, shared []string, status models.ProjectStatus, phases ...models.Phase) models.Project {
		return models.Project{
			ID:          id,
			Title:       title,
			Description: description,
			StartDate:   models.MustParseDate(start),
			EndDate:     models.MustParseDate(end),
			Location: models.Location{
				Address:     address,
				Coordinates: models.Coordinates{Lat: lat, Lng: lng},
			},
			Owner:      seedOwner,
			SharedWith: shared,
			Status:     status,
			Phases:     phases,
			Photos:     []models.ProjectPhoto{},
		}
	}

	return []models.Project{
		project("1", "Kitchen Renovation", "Complete kitchen remodel with new cabinets and appliances",
			"2024-04-01", "2024-05-15", "123 Main St, City", 40.7128, -74.006, []string{}, models.StatusPlanning,
			seedPhase("p1", "Demo and Prep", "Remove existing cabinets and prepare space", "2024-04-01", "2024-04-07", models.StatusPlanning,
				seedTask("t1", "Remove Existing Cabinets", "Carefully remove and dispose of old cabinets", models.StatusPlanning, "demo-team",
					seedInvoice("i1", "INV-2024-001", "Demo Crew Inc", "billing@democrew.com", "555-0123", 2500, "2024-04-15", models.InvoiceDraft)),
				seedTask("t2", "Electrical Updates", "Update wiring for new appliances", models.StatusPlanning, "electrician",
					seedInvoice("i2", "INV-2024-002", "Elite Electric", "accounts@eliteelectric.com", "", 3800, "2024-04-20", models.InvoiceDraft)),
			),
			seedPhase("p2", "Cabinet Installation", "Install new custom cabinets", "2024-04-08", "2024-04-21", models.StatusPlanning,
				seedTask("t3", "Install Base Cabinets", "Install and level all base cabinets", models.StatusPlanning, "cabinet-team",
					seedInvoice("i3", "INV-2024-003", "Custom Cabinets Co", "invoicing@customcabinets.com", "555-0456", 12500, "2024-04-30", models.InvoiceDraft)),
			),
			seedPhase("p3", "Finishing", "Install countertops and appliances", "2024-04-22", "2024-05-15", models.StatusPlanning,
				seedTask("t4", "Countertop Installation", "Install granite countertops", models.StatusPlanning, "stone-team",
					seedInvoice("i4", "INV-2024-004", "Granite Works", "billing@graniteworks.com", "", 8500, "2024-05-10", models.InvoiceDraft)),
				seedTask("t5", "Appliance Installation", "Install and connect all new appliances", models.StatusPlanning, "appliance-team",
					seedInvoice("i5", "INV-2024-005", "Appliance Pros", "accounts@appliancepros.com", "555-0789", 1500, "2024-05-15", models.InvoiceDraft)),
			),
		),
		project("2", "Bathroom Update", "Master bathroom modernization",
			"2024-05-01", "2024-05-30", "456 Oak Ave, Town", 40.7128, -74.006, []string{"user1", "user2"}, models.StatusInProgress,
			seedPhase("p4", "Demolition", "Remove existing fixtures and tiles", "2024-05-01", "2024-05-07", models.StatusInProgress,
				seedTask("t6", "Remove Fixtures", "Remove toilet, vanity, and shower fixtures", models.StatusInProgress, "plumber",
					seedInvoice("i6", "INV-2024-006", "Premier Plumbing", "invoices@premierplumbing.com", "", 1200, "2024-05-14", models.InvoiceSent)),
			),
			seedPhase("p5", "Plumbing and Electrical", "Update plumbing and electrical systems", "2024-05-08", "2024-05-14", models.StatusPlanning,
				seedTask("t7", "Plumbing Rough-in", "Install new plumbing lines", models.StatusPlanning, "plumber",
					seedInvoice("i7", "INV-2024-007", "Premier Plumbing", "invoices@premierplumbing.com", "", 3500, "2024-05-21", models.InvoiceDraft)),
			),
		),
		project("3", "Basement Finishing", "Convert unfinished basement into entertainment space with home theater and bar",
			"2024-06-01", "2024-08-15", "789 Pine Rd, Village", 41.8781, -87.6298, []string{"user3"}, models.StatusPlanning,
			seedPhase("p6", "Framing and Drywall", "Frame walls and install drywall", "2024-06-01", "2024-06-21", models.StatusPlanning,
				seedTask("t8", "Wall Framing", "Frame all interior walls", models.StatusPlanning, "carpenter",
					seedInvoice("i8", "INV-2024-008", "Construction Crew LLC", "billing@constructioncrew.com", "", 5800, "2024-06-15", models.InvoiceDraft)),
			),
			seedPhase("p7", "Home Theater Setup", "Install audio/visual equipment and seating", "2024-07-15", "2024-08-01", models.StatusPlanning,
				seedTask("t9", "AV Installation", "Install projector, screen, and sound system", models.StatusPlanning, "av-team",
					seedInvoice("i9", "INV-2024-009", "Home Theater Pros", "accounts@htpros.com", "", 12500, "2024-07-30", models.InvoiceDraft)),
			),
		),
		project("4", "Deck Construction", "Build new composite deck with built-in seating and pergola",
			"2024-05-15", "2024-06-30", "321 Maple Dr, Suburb", 42.3601, -71.0589, []string{}, models.StatusPlanning,
			seedPhase("p8", "Foundation", "Install footings and support structure", "2024-05-15", "2024-05-30", models.StatusPlanning,
				seedTask("t10", "Footing Installation", "Dig and pour concrete footings", models.StatusPlanning, "foundation-team",
					seedInvoice("i10", "INV-2024-010", "Concrete Solutions", "billing@concretesolutions.com", "", 4200, "2024-05-30", models.InvoiceDraft)),
			),
		),
		project("5", "Home Office Conversion", "Convert spare bedroom into modern home office with custom built-ins",
			"2024-04-15", "2024-05-15", "567 Birch Ln, Heights", 34.0522, -118.2437, []string{"user2"}, models.StatusInProgress,
			seedPhase("p9", "Built-ins Construction", "Build and install custom shelving and desk", "2024-04-15", "2024-05-01", models.StatusInProgress,
				seedTask("t11", "Custom Desk Build", "Build and install custom desk unit", models.StatusInProgress, "carpenter",
					seedInvoice("i11", "INV-2024-011", "Custom Woodworks", "invoicing@customwoodworks.com", "", 6800, "2024-04-30", models.InvoiceSent)),
			),
			seedPhase("p10", "Tech Setup", "Install networking and electrical upgrades", "2024-05-01", "2024-05-15", models.StatusPlanning,
				seedTask("t12", "Network Installation", "Install ethernet ports and wifi access point", models.StatusPlanning, "network-tech",
					seedInvoice("i12", "INV-2024-012", "Network Solutions Inc", "accounts@networksolutions.com", "", 1500, "2024-05-15", models.InvoiceDraft)),
			),
		),
	}
}

// SeedSuppliers returns the demo supplier directory
func SeedSuppliers() []models.Supplier {
	supplier := func(id, name, email, phone string, category models.SupplierCategory) models.Supplier {
		s := models.Supplier{ID: id, Name: name, Email: email, Category: &category}
		if phone != "" {
			s.Phone = strPtr(phone)
		}
		return s
	}

	return []models.Supplier{
		supplier("s1", "Design Studio Inc", "billing@designstudio.com", "", models.CategoryDesign),
		supplier("s2", "Build Right Construction", "accounts@buildright.com", "555-0123", models.CategoryConstruction),
		supplier("s3", "Power Pro Electric", "billing@powerpro.com", "555-0456", models.CategoryElectrical),
		supplier("s4", "Custom Cabinets Co", "sales@customcabinets.com", "", models.CategoryCarpentry),
		supplier("s5", "Perfect Paint Ltd", "accounts@perfectpaint.com", "", models.CategoryFinishing),
		supplier("s6", "Plumbing Masters", "invoices@plumbingmasters.com", "555-0789", models.CategoryPlumbing),
		supplier("s7", "HVAC Solutions", "billing@hvacsolutions.com", "555-0321", models.CategoryHVAC),
		supplier("s8", "Stone & Tile Works", "accounts@stonetile.com", "555-0654", models.CategoryFinishing),
		supplier("s9", "Smart Home Systems", "billing@smarthome.com", "555-0987", models.CategoryElectrical),
		supplier("s10", "Landscape Designs", "invoices@landscapedesigns.com", "", models.CategoryDesign),
		supplier("s11", "Window World", "accounts@windowworld.com", "555-1234", models.CategoryConstruction),
		supplier("s12", "Roofing Experts", "billing@roofingexperts.com", "555-5678", models.CategoryConstruction),
		supplier("s13", "Interior Solutions", "accounts@interiorsolutions.com", "", models.CategoryDesign),
		supplier("s14", "Concrete Specialists", "billing@concretespecialists.com", "555-9012", models.CategoryConstruction),
		supplier("s15", "Security Systems Pro", "invoices@securitypro.com", "555-3456", models.CategoryElectrical),
	}
}

// SeedUsers returns the demo user directory with hashed passwords
func SeedUsers() []models.User {
	user := func(id, email, name, password string, role models.Role) models.User {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), seedPasswordCost)
		if err != nil {
			log.Printf("warning: failed to hash seed password for %s: %v", email, err)
		}
		return models.User{ID: id, Email: email, Name: name, PasswordHash: string(hash), Role: role}
	}

	return []models.User{
		user("1", "admin@example.com", "Admin User", "admin123", models.RoleAdmin),
		user("2", "user@example.com", "Demo User", "user123", models.RoleUser),
	}
}
