package services

import (
	"strings"

	"github.com/kendall-kelly/renovation-manager-api/models"
)

// AddPhase appends a new phase with a fresh id and an empty task list
func (m *Mutator) AddPhase(p models.Project, in models.PhaseInput) (models.Project, models.Phase, error) {
	if err := in.Validate(); err != nil {
		return p, models.Phase{}, err
	}

	status := in.Status
	if status == "" {
		status = models.StatusPlanning
	}
	phase := models.Phase{
		ID:          m.NewID(),
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Status:      status,
		Tasks:       []models.Task{},
	}

	out := p
	out.Phases = appendCopy(p.Phases, phase)
	return out, phase, nil
}

// UpdatePhase applies the patch to one phase. Its tasks are left as they are.
func (m *Mutator) UpdatePhase(p models.Project, phaseID string, patch models.PhasePatch) (models.Project, models.Phase, error) {
	i := p.FindPhase(phaseID)
	if i < 0 {
		return p, models.Phase{}, models.NewNotFoundError("phase", phaseID)
	}

	phase := p.Phases[i]
	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return p, models.Phase{}, models.NewValidationError("title", "is required")
		}
		phase.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		phase.Description = *patch.Description
	}
	if patch.StartDate != nil {
		phase.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		phase.EndDate = *patch.EndDate
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return p, models.Phase{}, models.NewValidationError("status", "must be one of planning, in-progress, completed")
		}
		phase.Status = *patch.Status
	}
	if err := models.ValidateDateOrder(phase.StartDate, phase.EndDate); err != nil {
		return p, models.Phase{}, err
	}

	out := p
	out.Phases = replaceAt(p.Phases, i, phase)
	return out, phase, nil
}

// DeletePhase removes a phase and, with it, its tasks and their invoices.
// Deleting an unknown phase returns the project unchanged.
func (m *Mutator) DeletePhase(p models.Project, phaseID string) models.Project {
	i := p.FindPhase(phaseID)
	if i < 0 {
		return p
	}
	out := p
	out.Phases = removeAt(p.Phases, i)
	return out
}

// AddTask appends a new task with a fresh id and no invoices to a phase
func (m *Mutator) AddTask(p models.Project, phaseID string, in models.TaskInput) (models.Project, models.Task, error) {
	i := p.FindPhase(phaseID)
	if i < 0 {
		return p, models.Task{}, models.NewNotFoundError("phase", phaseID)
	}
	if err := in.Validate(); err != nil {
		return p, models.Task{}, err
	}

	status := in.Status
	if status == "" {
		status = models.StatusPlanning
	}
	task := models.Task{
		ID:          m.NewID(),
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Status:      status,
		AssignedTo:  in.AssignedTo,
		Invoices:    []models.Invoice{},
	}

	phase := p.Phases[i]
	phase.Tasks = appendCopy(phase.Tasks, task)

	out := p
	out.Phases = replaceAt(p.Phases, i, phase)
	return out, task, nil
}

// UpdateTask applies the patch to one task. An empty assignedTo clears the assignment.
func (m *Mutator) UpdateTask(p models.Project, phaseID, taskID string, patch models.TaskPatch) (models.Project, models.Task, error) {
	pi, ti, err := locateTask(p, phaseID, taskID)
	if err != nil {
		return p, models.Task{}, err
	}

	task := p.Phases[pi].Tasks[ti]
	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return p, models.Task{}, models.NewValidationError("title", "is required")
		}
		task.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return p, models.Task{}, models.NewValidationError("status", "must be one of planning, in-progress, completed")
		}
		task.Status = *patch.Status
	}
	if patch.AssignedTo != nil {
		if *patch.AssignedTo == "" {
			task.AssignedTo = nil
		} else {
			assigned := *patch.AssignedTo
			task.AssignedTo = &assigned
		}
	}

	return withTask(p, pi, ti, task), task, nil
}

// DeleteTask removes a task and its invoices. Unknown ids are a no-op.
func (m *Mutator) DeleteTask(p models.Project, phaseID, taskID string) models.Project {
	pi, ti, err := locateTask(p, phaseID, taskID)
	if err != nil {
		return p
	}
	phase := p.Phases[pi]
	phase.Tasks = removeAt(phase.Tasks, ti)

	out := p
	out.Phases = replaceAt(p.Phases, pi, phase)
	return out
}

// locateTask resolves phase and task indexes or reports which one is missing
func locateTask(p models.Project, phaseID, taskID string) (int, int, error) {
	pi := p.FindPhase(phaseID)
	if pi < 0 {
		return -1, -1, models.NewNotFoundError("phase", phaseID)
	}
	ti := p.Phases[pi].FindTask(taskID)
	if ti < 0 {
		return -1, -1, models.NewNotFoundError("task", taskID)
	}
	return pi, ti, nil
}

// withTask rebuilds the phase and project arrays around a replaced task
func withTask(p models.Project, pi, ti int, task models.Task) models.Project {
	phase := p.Phases[pi]
	phase.Tasks = replaceAt(phase.Tasks, ti, task)

	out := p
	out.Phases = replaceAt(p.Phases, pi, phase)
	return out
}
