package handler

import (
	"net/http"

	"github.com/teamtrack/tracker/internal/service"
)

// ProjectHandler serves project creation, listing, and status changes.
type ProjectHandler struct {
	projects  *service.ProjectService
	lifecycle *service.LifecycleService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projects *service.ProjectService, lifecycle *service.LifecycleService) *ProjectHandler {
	return &ProjectHandler{projects: projects, lifecycle: lifecycle}
}

type createProjectRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	WorkerIDs   []int64 `json:"worker_ids"`
}

// Create handles POST /projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	project, err := h.projects.Create(r.Context(), req.Name, req.Description, req.Type, req.WorkerIDs)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toProjectResponse(project))
}

// List handles GET /projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projects.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	out := make([]projectResponse, len(projects))
	for i := range projects {
		out[i] = toProjectResponse(&projects[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// SetStatus handles PUT /projects/{id}/status.
func (h *ProjectHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	var req setStatusRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.lifecycle.SetProjectStatus(r.Context(), id, req.Status); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}
