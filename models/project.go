package models

// Coordinates is a latitude/longitude pair
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location is the street address and map position of a project
type Location struct {
	Address     string      `json:"address"`
	Coordinates Coordinates `json:"coordinates"`
}

// ProjectOwner is the snapshot of the user who created a project
type ProjectOwner struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Project is a renovation effort decomposed into phases
type Project struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	StartDate   Date           `json:"startDate"`
	EndDate     Date           `json:"endDate"`
	Location    Location       `json:"location"`
	Owner       ProjectOwner   `json:"owner"`
	SharedWith  []string       `json:"sharedWith"`
	Status      ProjectStatus  `json:"status"`
	Phases      []Phase        `json:"phases"`
	Photos      []ProjectPhoto `json:"photos"`
}

// ProjectPhoto is an image in a project's gallery. URL holds the storage reference.
type ProjectPhoto struct {
	ID         string  `json:"id"`
	URL        string  `json:"url"`
	Caption    *string `json:"caption,omitempty"`
	UploadedAt Date    `json:"uploadedAt"`
}

// Clone returns a deep copy of the project
func (p Project) Clone() Project {
	out := p
	out.SharedWith = append([]string{}, p.SharedWith...)
	out.Phases = make([]Phase, len(p.Phases))
	for i, phase := range p.Phases {
		out.Phases[i] = phase.Clone()
	}
	out.Photos = make([]ProjectPhoto, len(p.Photos))
	for i, photo := range p.Photos {
		out.Photos[i] = photo.Clone()
	}
	return out
}

// Normalize replaces missing collections with empty ones, recursively.
// Payloads written by older clients may omit photos or sharedWith entirely.
func (p *Project) Normalize() {
	if p.SharedWith == nil {
		p.SharedWith = []string{}
	}
	if p.Photos == nil {
		p.Photos = []ProjectPhoto{}
	}
	if p.Phases == nil {
		p.Phases = []Phase{}
	}
	for i := range p.Phases {
		p.Phases[i].Normalize()
	}
}

// Invoices returns every invoice reachable from the project
func (p Project) Invoices() []Invoice {
	var invoices []Invoice
	for _, phase := range p.Phases {
		invoices = append(invoices, phase.Invoices()...)
	}
	return invoices
}

// FindPhase returns the index of the phase with the given id, or -1
func (p Project) FindPhase(phaseID string) int {
	for i, phase := range p.Phases {
		if phase.ID == phaseID {
			return i
		}
	}
	return -1
}

// FindPhoto returns the index of the photo with the given id, or -1
func (p Project) FindPhoto(photoID string) int {
	for i, photo := range p.Photos {
		if photo.ID == photoID {
			return i
		}
	}
	return -1
}

// IsSharedWith reports whether userID is a collaborator on the project
func (p Project) IsSharedWith(userID string) bool {
	for _, id := range p.SharedWith {
		if id == userID {
			return true
		}
	}
	return false
}

// Clone returns a copy of the photo that shares no pointers with the original
func (ph ProjectPhoto) Clone() ProjectPhoto {
	out := ph
	if ph.Caption != nil {
		caption := *ph.Caption
		out.Caption = &caption
	}
	return out
}
