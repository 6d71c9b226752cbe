package handler

import (
	"net/http"
	"strconv"

	"github.com/teamtrack/tracker/internal/service"
)

// ProblemHandler serves problem creation, listing, claiming, and status
// changes.
type ProblemHandler struct {
	problems  *service.ProblemService
	claims    *service.ClaimService
	lifecycle *service.LifecycleService
}

// NewProblemHandler creates a new ProblemHandler.
func NewProblemHandler(problems *service.ProblemService, claims *service.ClaimService, lifecycle *service.LifecycleService) *ProblemHandler {
	return &ProblemHandler{problems: problems, claims: claims, lifecycle: lifecycle}
}

type createProblemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ProjectID   *int64  `json:"project_id"`
	CategoryIDs []int64 `json:"category_ids"`
}

type setStatusRequest struct {
	Status string `json:"status"`
}

// Create handles POST /problems.
func (h *ProblemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProblemRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	problem, err := h.problems.Create(r.Context(), req.Name, req.Description, req.ProjectID, req.CategoryIDs)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toProblemResponse(problem))
}

// List handles GET /problems.
func (h *ProblemHandler) List(w http.ResponseWriter, r *http.Request) {
	views, err := h.problems.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	out := make([]problemResponse, len(views))
	for i := range views {
		out[i] = toProblemViewResponse(&views[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /problems/{id}.
func (h *ProblemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid problem id")
		return
	}

	problem, err := h.problems.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProblemResponse(problem))
}

// SetStatus handles PUT /problems/{id}/status.
func (h *ProblemHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid problem id")
		return
	}

	var req setStatusRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.lifecycle.SetProblemStatus(r.Context(), id, req.Status); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}

// Claim handles POST /problems/{id}/claim for the authenticated user.
func (h *ProblemHandler) Claim(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid problem id")
		return
	}

	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.claims.Claim(r.Context(), id, user.ID); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "claimed"})
}

// Unclaim handles POST /problems/{id}/unclaim.
func (h *ProblemHandler) Unclaim(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid problem id")
		return
	}

	if err := h.claims.Unclaim(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "unclaimed"})
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}
