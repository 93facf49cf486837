package services

import (
	"strings"

	"github.com/kendall-kelly/renovation-manager-api/models"
)

// CreateProject builds a new project owned by owner. The project starts in
// planning with no phases, photos or collaborators.
func (m *Mutator) CreateProject(in models.ProjectInput, owner models.User) (models.Project, error) {
	if err := in.Validate(); err != nil {
		return models.Project{}, err
	}

	return models.Project{
		ID:          m.NewID(),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Location:    in.Location,
		Owner:       owner.Owner(),
		SharedWith:  []string{},
		Status:      models.StatusPlanning,
		Phases:      []models.Phase{},
		Photos:      []models.ProjectPhoto{},
	}, nil
}

// UpdateProject applies the patch. Id, owner, phases and photos are not
// reachable through a patch.
func (m *Mutator) UpdateProject(p models.Project, patch models.ProjectPatch) (models.Project, error) {
	out := p
	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return p, models.NewValidationError("title", "is required")
		}
		out.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		out.Description = *patch.Description
	}
	if patch.StartDate != nil {
		out.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		out.EndDate = *patch.EndDate
	}
	if patch.Location != nil {
		if strings.TrimSpace(patch.Location.Address) == "" {
			return p, models.NewValidationError("location.address", "is required")
		}
		out.Location = *patch.Location
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return p, models.NewValidationError("status", "must be one of planning, in-progress, completed")
		}
		out.Status = *patch.Status
	}
	if out.StartDate.IsZero() || out.EndDate.IsZero() {
		return p, models.NewValidationError("startDate", "both start and end dates are required")
	}
	if err := models.ValidateDateOrder(out.StartDate, out.EndDate); err != nil {
		return p, err
	}
	return out, nil
}

// DeleteProject removes the project with the given id together with
// everything it owns. Deleting an unknown id returns the list unchanged.
func (m *Mutator) DeleteProject(projects []models.Project, id string) []models.Project {
	for i, project := range projects {
		if project.ID == id {
			return removeAt(projects, i)
		}
	}
	return projects
}

// ShareProject replaces the collaborator set wholesale. Ids are not checked
// against the user directory; the owner cannot be a collaborator.
func (m *Mutator) ShareProject(p models.Project, userIDs []string) (models.Project, error) {
	shared := make([]string, 0, len(userIDs))
	seen := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		if id == p.Owner.ID {
			return p, models.NewValidationError("sharedWith", "the project owner cannot be added as a collaborator")
		}
		seen[id] = true
		shared = append(shared, id)
	}

	out := p
	out.SharedWith = shared
	return out, nil
}
