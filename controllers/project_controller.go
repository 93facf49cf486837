package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/renovation-manager-api/middleware"
	"github.com/kendall-kelly/renovation-manager-api/models"
	"github.com/kendall-kelly/renovation-manager-api/services"
)

// ProjectController serves projects and their phases and tasks
type ProjectController struct {
	projects  *services.ProjectService
	summaries *services.SummaryService
	images    services.ImageService
}

// NewProjectController creates a project controller
func NewProjectController(projects *services.ProjectService, summaries *services.SummaryService, images services.ImageService) *ProjectController {
	return &ProjectController{projects: projects, summaries: summaries, images: images}
}

// ShareProjectRequest is the body of PUT /projects/:id/share
type ShareProjectRequest struct {
	SharedWith []string `json:"sharedWith"`
}

// ListProjects handles GET /api/v1/projects?search=&status=
func (pc *ProjectController) ListProjects(c *gin.Context) {
	filter := services.ProjectFilter{
		Search: c.Query("search"),
		Status: models.ProjectStatus(c.Query("status")),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		badRequest(c, "VALIDATION_ERROR", "status must be one of planning, in-progress, completed")
		return
	}

	projects := pc.projects.List(filter)
	data := make([]projectResponse, len(projects))
	for i, p := range projects {
		data[i] = presentProject(c.Request.Context(), pc.images, p)
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
		"count":   len(data),
	})
}

// GetProject handles GET /api/v1/projects/:id
func (pc *ProjectController) GetProject(c *gin.Context) {
	project, err := pc.projects.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondResult(c, http.StatusOK, presentProject(c.Request.Context(), pc.images, project), nil)
}

// CreateProject handles POST /api/v1/projects. The current user becomes the owner.
func (pc *ProjectController) CreateProject(c *gin.Context) {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		respondError(c, services.ErrNotAuthenticated)
		return
	}

	var in models.ProjectInput
	if !bindJSON(c, &in) {
		return
	}

	project, err := pc.projects.Create(c.Request.Context(), in, user)
	respondResult(c, http.StatusCreated, resultProject(c, pc, project, err), err)
}

// UpdateProject handles PUT /api/v1/projects/:id
func (pc *ProjectController) UpdateProject(c *gin.Context) {
	var patch models.ProjectPatch
	if !bindJSON(c, &patch) {
		return
	}

	project, err := pc.projects.Update(c.Request.Context(), c.Param("id"), patch)
	respondResult(c, http.StatusOK, resultProject(c, pc, project, err), err)
}

// DeleteProject handles DELETE /api/v1/projects/:id. Deleting a missing project succeeds.
func (pc *ProjectController) DeleteProject(c *gin.Context) {
	err := pc.projects.Delete(c.Request.Context(), c.Param("id"))
	respondResult(c, http.StatusOK, nil, err)
}

// ShareProject handles PUT /api/v1/projects/:id/share
func (pc *ProjectController) ShareProject(c *gin.Context) {
	var req ShareProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := pc.projects.Share(c.Request.Context(), c.Param("id"), req.SharedWith)
	respondResult(c, http.StatusOK, resultProject(c, pc, project, err), err)
}

// ProjectSummary handles GET /api/v1/projects/:id/summary
func (pc *ProjectController) ProjectSummary(c *gin.Context) {
	summary, err := pc.summaries.ProjectSummary(c.Param("id"))
	respondSummary(c, summary, err)
}

// AddPhase handles POST /api/v1/projects/:id/phases
func (pc *ProjectController) AddPhase(c *gin.Context) {
	var in models.PhaseInput
	if !bindJSON(c, &in) {
		return
	}

	phase, err := pc.projects.AddPhase(c.Request.Context(), c.Param("id"), in)
	respondResult(c, http.StatusCreated, phase, err)
}

// UpdatePhase handles PUT /api/v1/projects/:id/phases/:phaseId
func (pc *ProjectController) UpdatePhase(c *gin.Context) {
	var patch models.PhasePatch
	if !bindJSON(c, &patch) {
		return
	}

	phase, err := pc.projects.UpdatePhase(c.Request.Context(), c.Param("id"), c.Param("phaseId"), patch)
	respondResult(c, http.StatusOK, phase, err)
}

// DeletePhase handles DELETE /api/v1/projects/:id/phases/:phaseId
func (pc *ProjectController) DeletePhase(c *gin.Context) {
	err := pc.projects.DeletePhase(c.Request.Context(), c.Param("id"), c.Param("phaseId"))
	respondResult(c, http.StatusOK, nil, err)
}

// PhaseSummary handles GET /api/v1/projects/:id/phases/:phaseId/summary
func (pc *ProjectController) PhaseSummary(c *gin.Context) {
	summary, err := pc.summaries.PhaseSummary(c.Param("id"), c.Param("phaseId"))
	respondSummary(c, summary, err)
}

// AddTask handles POST /api/v1/projects/:id/phases/:phaseId/tasks
func (pc *ProjectController) AddTask(c *gin.Context) {
	var in models.TaskInput
	if !bindJSON(c, &in) {
		return
	}

	task, err := pc.projects.AddTask(c.Request.Context(), c.Param("id"), c.Param("phaseId"), in)
	respondResult(c, http.StatusCreated, task, err)
}

// UpdateTask handles PUT /api/v1/projects/:id/phases/:phaseId/tasks/:taskId
func (pc *ProjectController) UpdateTask(c *gin.Context) {
	var patch models.TaskPatch
	if !bindJSON(c, &patch) {
		return
	}

	task, err := pc.projects.UpdateTask(c.Request.Context(), c.Param("id"), c.Param("phaseId"), c.Param("taskId"), patch)
	respondResult(c, http.StatusOK, task, err)
}

// DeleteTask handles DELETE /api/v1/projects/:id/phases/:phaseId/tasks/:taskId
func (pc *ProjectController) DeleteTask(c *gin.Context) {
	err := pc.projects.DeleteTask(c.Request.Context(), c.Param("id"), c.Param("phaseId"), c.Param("taskId"))
	respondResult(c, http.StatusOK, nil, err)
}

// TaskSummary handles GET /api/v1/projects/:id/phases/:phaseId/tasks/:taskId/summary
func (pc *ProjectController) TaskSummary(c *gin.Context) {
	summary, err := pc.summaries.TaskSummary(c.Param("id"), c.Param("phaseId"), c.Param("taskId"))
	respondSummary(c, summary, err)
}

// resultProject presents a project unless the operation failed outright
func resultProject(c *gin.Context, pc *ProjectController, project models.Project, err error) interface{} {
	if err != nil && !models.IsPersistence(err) {
		return nil
	}
	return presentProject(c.Request.Context(), pc.images, project)
}

func respondSummary(c *gin.Context, summary models.InvoiceSummary, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	respondResult(c, http.StatusOK, summary, nil)
}
