package handler

import (
	"net/http"

	"github.com/teamtrack/tracker/internal/domain"
	"github.com/teamtrack/tracker/internal/service"
)

// LeaderboardHandler serves rankings, per-user points, user listings, and
// the stats snapshot.
type LeaderboardHandler struct {
	scores *service.ScoreService
	users  domain.UserRepository
}

// NewLeaderboardHandler creates a new LeaderboardHandler.
func NewLeaderboardHandler(scores *service.ScoreService, users domain.UserRepository) *LeaderboardHandler {
	return &LeaderboardHandler{scores: scores, users: users}
}

// Leaderboard handles GET /leaderboard.
func (h *LeaderboardHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.scores.Rankings(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	out := make([]leaderboardEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = leaderboardEntryResponse{Rank: e.Rank, Username: e.Username, Points: e.Points}
	}
	writeJSON(w, http.StatusOK, out)
}

// UserPoints handles GET /users/{id}/points.
func (h *LeaderboardHandler) UserPoints(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if _, err := h.users.GetByID(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}

	points, err := h.scores.TotalPoints(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"user_id": id, "points": points})
}

// ListUsers handles GET /users.
func (h *LeaderboardHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	out := make([]userResponse, len(users))
	for i := range users {
		out[i] = toUserResponse(&users[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// Stats handles GET /stats.
func (h *LeaderboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.scores.Stats(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toStatsResponse(stats))
}
