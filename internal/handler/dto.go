package handler

import (
	"time"

	"github.com/teamtrack/tracker/internal/domain"
)

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type categoryResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Points int64  `json:"points"`
}

type projectResponse struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Type        string         `json:"type"`
	Status      string         `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
	Workers     []userResponse `json:"workers"`
}

type problemResponse struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Status      string             `json:"status"`
	ProjectID   *int64             `json:"project_id,omitempty"`
	ProjectName *string            `json:"project_name,omitempty"`
	ClaimedBy   *int64             `json:"claimed_by,omitempty"`
	Claimant    *string            `json:"claimant,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	CompletedAt *time.Time         `json:"completed_at,omitempty"`
	Categories  []categoryResponse `json:"categories"`
	TotalPoints int64              `json:"total_points"`
}

type leaderboardEntryResponse struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Points   int64  `json:"points"`
}

type categoryCompletionResponse struct {
	Category  string `json:"category"`
	Completed int64  `json:"completed"`
	Points    int64  `json:"points"`
}

type statusCountResponse struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type statsResponse struct {
	CompletedProjects   int64                        `json:"completed_projects"`
	CompletedProblems   int64                        `json:"completed_problems"`
	CategoryCompletions []categoryCompletionResponse `json:"category_completions"`
	ProjectStatuses     []statusCountResponse        `json:"project_statuses"`
}

func toStatsResponse(s *domain.Stats) statsResponse {
	resp := statsResponse{
		CompletedProjects:   s.CompletedProjects,
		CompletedProblems:   s.CompletedProblems,
		CategoryCompletions: make([]categoryCompletionResponse, len(s.CategoryCompletions)),
		ProjectStatuses:     make([]statusCountResponse, len(s.ProjectStatuses)),
	}
	for i, cc := range s.CategoryCompletions {
		resp.CategoryCompletions[i] = categoryCompletionResponse{Category: cc.Category, Completed: cc.Completed, Points: cc.Points}
	}
	for i, sc := range s.ProjectStatuses {
		resp.ProjectStatuses[i] = statusCountResponse{Status: sc.Status, Count: sc.Count}
	}
	return resp
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username}
}

func toCategoryResponses(categories []domain.Category) []categoryResponse {
	out := make([]categoryResponse, len(categories))
	for i, c := range categories {
		out[i] = categoryResponse{ID: c.ID, Name: c.Name, Points: c.Points}
	}
	return out
}

func toProjectResponse(p *domain.Project) projectResponse {
	workers := make([]userResponse, len(p.Workers))
	for i := range p.Workers {
		workers[i] = toUserResponse(&p.Workers[i])
	}
	return projectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Type:        p.Type,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		CompletedAt: p.CompletedAt,
		Workers:     workers,
	}
}

func toProblemResponse(p *domain.Problem) problemResponse {
	resp := problemResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
		ProjectID:   p.ProjectID,
		ClaimedBy:   p.ClaimedBy,
		CreatedAt:   p.CreatedAt,
		CompletedAt: p.CompletedAt,
		Categories:  toCategoryResponses(p.Categories),
	}
	for _, c := range p.Categories {
		resp.TotalPoints += c.Points
	}
	return resp
}

func toProblemViewResponse(v *domain.ProblemView) problemResponse {
	resp := toProblemResponse(&v.Problem)
	resp.ProjectName = v.ProjectName
	resp.Claimant = v.ClaimantName
	resp.TotalPoints = v.TotalPoints
	return resp
}
