package services

import (
	"context"
	"strings"

	"github.com/kendall-kelly/renovation-manager-api/models"
)

// ProjectFilter narrows a project listing. Zero values match everything.
type ProjectFilter struct {
	Search string
	Status models.ProjectStatus
}

// Matches reports whether the project passes the filter. Search is a
// case-insensitive substring match over title and description.
func (f ProjectFilter) Matches(p models.Project) bool {
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		return strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Description), q)
	}
	return true
}

// ProjectRepository is the durable projects collection. Each project owns
// its phases, tasks, invoices and photos, so the whole tree is persisted
// under the single projects key.
type ProjectRepository struct {
	projects *syncedCollection[[]models.Project]
}

// NewProjectRepository creates a repository persisting to store, seeded by
// seed when nothing usable is stored
func NewProjectRepository(store KVStore, seed func() []models.Project) *ProjectRepository {
	c := newSyncedCollection(KeyProjects, store, seed, cloneProjects)
	c.normalize = normalizeProjects
	return &ProjectRepository{projects: c}
}

func cloneProjects(in []models.Project) []models.Project {
	out := make([]models.Project, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}

func normalizeProjects(in []models.Project) []models.Project {
	if in == nil {
		return []models.Project{}
	}
	for i := range in {
		in[i].Normalize()
	}
	return in
}

// Hydrate loads the stored projects. See syncedCollection.Hydrate.
func (r *ProjectRepository) Hydrate(ctx context.Context) error {
	return r.projects.Hydrate(ctx)
}

// All returns every project
func (r *ProjectRepository) All() []models.Project {
	return r.projects.Get()
}

// List returns the projects matching filter, in stored order
func (r *ProjectRepository) List(filter ProjectFilter) []models.Project {
	all := r.projects.Get()
	out := make([]models.Project, 0, len(all))
	for _, p := range all {
		if filter.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// GetByID returns the project with the given id
func (r *ProjectRepository) GetByID(id string) (models.Project, error) {
	for _, p := range r.projects.Get() {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Project{}, models.NewNotFoundError("project", id)
}

// Create appends a project
func (r *ProjectRepository) Create(ctx context.Context, project models.Project) (models.Project, error) {
	var created models.Project
	_, err := r.projects.Commit(ctx, func(current []models.Project) ([]models.Project, error) {
		for _, p := range current {
			if p.ID == project.ID {
				return nil, models.NewValidationError("id", "a project with this id already exists")
			}
		}
		created = project.Clone()
		return appendCopy(current, created), nil
	})
	if err != nil && !models.IsPersistence(err) {
		return models.Project{}, err
	}
	return created, err
}

// Mutate replaces one project with the result of fn. fn receives a copy.
func (r *ProjectRepository) Mutate(ctx context.Context, id string, fn func(models.Project) (models.Project, error)) (models.Project, error) {
	var updated models.Project
	_, err := r.projects.Commit(ctx, func(current []models.Project) ([]models.Project, error) {
		for i, p := range current {
			if p.ID != id {
				continue
			}
			next, err := fn(p)
			if err != nil {
				return nil, err
			}
			next.ID = id
			updated = next
			return replaceAt(current, i, next), nil
		}
		return nil, models.NewNotFoundError("project", id)
	})
	if err != nil && !models.IsPersistence(err) {
		return models.Project{}, err
	}
	return updated, err
}

// Replace recomputes the whole collection, e.g. to remove a project
func (r *ProjectRepository) Replace(ctx context.Context, fn func([]models.Project) ([]models.Project, error)) ([]models.Project, error) {
	return r.projects.Commit(ctx, fn)
}

// Status reports the collection's hydration source and write health
func (r *ProjectRepository) Status() CollectionStatus {
	return r.projects.Status()
}
