package services

import (
	"github.com/kendall-kelly/renovation-manager-api/models"
)

// SummaryScope selects what a summary aggregates
type SummaryScope string

const (
	ScopeTask     SummaryScope = "task"
	ScopePhase    SummaryScope = "phase"
	ScopeProject  SummaryScope = "project"
	ScopeSupplier SummaryScope = "supplier"
)

// SummaryService computes invoice summaries on demand. Nothing is cached;
// every call walks the current projects.
type SummaryService struct {
	projects *ProjectRepository
}

// NewSummaryService creates a summary service reading from projects
func NewSummaryService(projects *ProjectRepository) *SummaryService {
	return &SummaryService{projects: projects}
}

// Summarize returns the summary for a task, phase or project id, or for a
// supplier name. Unknown task, phase and project ids are not found; a
// supplier name with no invoices summarizes to zero.
func (s *SummaryService) Summarize(scope SummaryScope, id string) (models.InvoiceSummary, error) {
	projects := s.projects.All()

	switch scope {
	case ScopeSupplier:
		return SummarizeSupplier(projects, id), nil
	case ScopeProject:
		for _, p := range projects {
			if p.ID == id {
				return SummarizeProject(p), nil
			}
		}
		return models.InvoiceSummary{}, models.NewNotFoundError("project", id)
	case ScopePhase:
		for _, p := range projects {
			if i := p.FindPhase(id); i >= 0 {
				return SummarizePhase(p.Phases[i]), nil
			}
		}
		return models.InvoiceSummary{}, models.NewNotFoundError("phase", id)
	case ScopeTask:
		for _, p := range projects {
			for _, phase := range p.Phases {
				if i := phase.FindTask(id); i >= 0 {
					return SummarizeTask(phase.Tasks[i]), nil
				}
			}
		}
		return models.InvoiceSummary{}, models.NewNotFoundError("task", id)
	}
	return models.InvoiceSummary{}, models.NewValidationError("scope", "must be one of task, phase, project, supplier")
}

// ProjectSummary summarizes one project
func (s *SummaryService) ProjectSummary(projectID string) (models.InvoiceSummary, error) {
	project, err := s.projects.GetByID(projectID)
	if err != nil {
		return models.InvoiceSummary{}, err
	}
	return SummarizeProject(project), nil
}

// PhaseSummary summarizes one phase of a project
func (s *SummaryService) PhaseSummary(projectID, phaseID string) (models.InvoiceSummary, error) {
	project, err := s.projects.GetByID(projectID)
	if err != nil {
		return models.InvoiceSummary{}, err
	}
	i := project.FindPhase(phaseID)
	if i < 0 {
		return models.InvoiceSummary{}, models.NewNotFoundError("phase", phaseID)
	}
	return SummarizePhase(project.Phases[i]), nil
}

// TaskSummary summarizes one task of a project
func (s *SummaryService) TaskSummary(projectID, phaseID, taskID string) (models.InvoiceSummary, error) {
	project, err := s.projects.GetByID(projectID)
	if err != nil {
		return models.InvoiceSummary{}, err
	}
	pi, ti, err := locateTask(project, phaseID, taskID)
	if err != nil {
		return models.InvoiceSummary{}, err
	}
	return SummarizeTask(project.Phases[pi].Tasks[ti]), nil
}
