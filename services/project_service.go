package services

import (
	"context"

	"github.com/kendall-kelly/renovation-manager-api/models"
)

// ProjectService applies mutation operations to the durable projects collection
type ProjectService struct {
	projects *ProjectRepository
	mutator  *Mutator
}

// ProjectServiceOption is a functional option for ProjectService
type ProjectServiceOption func(*ProjectService)

// WithProjectMutator sets the mutator used for id and timestamp generation
func WithProjectMutator(m *Mutator) ProjectServiceOption {
	return func(s *ProjectService) {
		s.mutator = m
	}
}

// NewProjectService creates a new project service
func NewProjectService(projects *ProjectRepository, opts ...ProjectServiceOption) *ProjectService {
	s := &ProjectService{projects: projects, mutator: NewMutator()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns the projects matching filter
func (s *ProjectService) List(filter ProjectFilter) []models.Project {
	return s.projects.List(filter)
}

// Get returns one project
func (s *ProjectService) Get(id string) (models.Project, error) {
	return s.projects.GetByID(id)
}

// Create validates the input and stores a new project owned by owner.
// A *models.PersistenceError alongside a project means it was kept in memory only.
func (s *ProjectService) Create(ctx context.Context, in models.ProjectInput, owner models.User) (models.Project, error) {
	project, err := s.mutator.CreateProject(in, owner)
	if err != nil {
		return models.Project{}, err
	}
	return s.projects.Create(ctx, project)
}

// Update applies a patch to a project's own fields
func (s *ProjectService) Update(ctx context.Context, id string, patch models.ProjectPatch) (models.Project, error) {
	return s.projects.Mutate(ctx, id, func(p models.Project) (models.Project, error) {
		return s.mutator.UpdateProject(p, patch)
	})
}

// Delete removes a project and everything it owns. Deleting a missing
// project succeeds without writing.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if _, err := s.projects.GetByID(id); err != nil {
		return nil
	}
	_, err := s.projects.Replace(ctx, func(current []models.Project) ([]models.Project, error) {
		return s.mutator.DeleteProject(current, id), nil
	})
	return err
}

// Share replaces a project's collaborator list
func (s *ProjectService) Share(ctx context.Context, id string, userIDs []string) (models.Project, error) {
	return s.projects.Mutate(ctx, id, func(p models.Project) (models.Project, error) {
		return s.mutator.ShareProject(p, userIDs)
	})
}

// AddPhase appends a phase to a project
func (s *ProjectService) AddPhase(ctx context.Context, projectID string, in models.PhaseInput) (models.Phase, error) {
	var phase models.Phase
	_, err := s.projects.Mutate(ctx, projectID, func(p models.Project) (models.Project, error) {
		next, added, err := s.mutator.AddPhase(p, in)
		phase = added
		return next, err
	})
	if err != nil && !models.IsPersistence(err) {
		return models.Phase{}, err
	}
	return phase, err
}

// UpdatePhase applies a patch to a phase
func (s *ProjectService) UpdatePhase(ctx context.Context, projectID, phaseID string, patch models.PhasePatch) (models.Phase, error) {
	var phase models.Phase
	_, err := s.projects.Mutate(ctx, projectID, func(p models.Project) (models.Project, error) {
		next, updated, err := s.mutator.UpdatePhase(p, phaseID, patch)
		phase = updated
		return next, err
	})
	if err != nil && !models.IsPersistence(err) {
		return models.Phase{}, err
	}
	return phase, err
}

// DeletePhase removes a phase with its tasks and invoices
func (s *ProjectService) DeletePhase(ctx context.Context, projectID, phaseID string) error {
	return s.deleteNested(ctx, projectID, func(p models.Project) (models.Project, bool) {
		return s.mutator.DeletePhase(p, phaseID), p.FindPhase(phaseID) >= 0
	})
}

// AddTask appends a task to a phase
func (s *ProjectService) AddTask(ctx context.Context, projectID, phaseID string, in models.TaskInput) (models.Task, error) {
	var task models.Task
	_, err := s.projects.Mutate(ctx, projectID, func(p models.Project) (models.Project, error) {
		next, added, err := s.mutator.AddTask(p, phaseID, in)
		task = added
		return next, err
	})
	if err != nil && !models.IsPersistence(err) {
		return models.Task{}, err
	}
	return task, err
}

// UpdateTask applies a patch to a task
func (s *ProjectService) UpdateTask(ctx context.Context, projectID, phaseID, taskID string, patch models.TaskPatch) (models.Task, error) {
	var task models.Task
	_, err := s.projects.Mutate(ctx, projectID, func(p models.Project) (models.Project, error) {
		next, updated, err := s.mutator.UpdateTask(p, phaseID, taskID, patch)
		task = updated
		return next, err
	})
	if err != nil && !models.IsPersistence(err) {
		return models.Task{}, err
	}
	return task, err
}

// DeleteTask removes a task with its invoices
func (s *ProjectService) DeleteTask(ctx context.Context, projectID, phaseID, taskID string) error {
	return s.deleteNested(ctx, projectID, func(p models.Project) (models.Project, bool) {
		_, _, err := locateTask(p, phaseID, taskID)
		return s.mutator.DeleteTask(p, phaseID, taskID), err == nil
	})
}

// AddPhotos appends uploaded images to a project's gallery
func (s *ProjectService) AddPhotos(ctx context.Context, projectID string, uploads []models.PhotoUpload) ([]models.ProjectPhoto, error) {
	var photos []models.ProjectPhoto
	_, err := s.projects.Mutate(ctx, projectID, func(p models.Project) (models.Project, error) {
		next, added, err := s.mutator.AddPhotos(p, uploads)
		photos = added
		return next, err
	})
	if err != nil && !models.IsPersistence(err) {
		return nil, err
	}
	return photos, err
}

// UpdatePhotoCaption sets or clears a photo caption
func (s *ProjectService) UpdatePhotoCaption(ctx context.Context, projectID, photoID, caption string) (models.ProjectPhoto, error) {
	var photo models.ProjectPhoto
	_, err := s.projects.Mutate(ctx, projectID, func(p models.Project) (models.Project, error) {
		next, updated, err := s.mutator.UpdatePhotoCaption(p, photoID, caption)
		photo = updated
		return next, err
	})
	if err != nil && !models.IsPersistence(err) {
		return models.ProjectPhoto{}, err
	}
	return photo, err
}

// DeletePhoto removes a photo from the gallery and returns it, or nil when
// the photo was already gone
func (s *ProjectService) DeletePhoto(ctx context.Context, projectID, photoID string) (*models.ProjectPhoto, error) {
	var removed *models.ProjectPhoto
	err := s.deleteNested(ctx, projectID, func(p models.Project) (models.Project, bool) {
		next, photo := s.mutator.DeletePhoto(p, photoID)
		removed = photo
		return next, photo != nil
	})
	return removed, err
}

// deleteNested runs an idempotent delete inside a project. The project must
// exist; when the nested entity is already gone nothing is written.
func (s *ProjectService) deleteNested(ctx context.Context, projectID string, del func(models.Project) (models.Project, bool)) error {
	project, err := s.projects.GetByID(projectID)
	if err != nil {
		return err
	}
	if _, found := del(project); !found {
		return nil
	}
	_, err = s.projects.Mutate(ctx, projectID, func(p models.Project) (models.Project, error) {
		next, _ := del(p)
		return next, nil
	})
	return err
}
