package handler

import (
	"net/http"

	"github.com/teamtrack/tracker/internal/domain"
	"github.com/teamtrack/tracker/internal/service"
)

// Services bundles everything the HTTP layer depends on.
type Services struct {
	Auth       *service.AuthService
	Claims     *service.ClaimService
	Lifecycle  *service.LifecycleService
	Scores     *service.ScoreService
	Problems   *service.ProblemService
	Projects   *service.ProjectService
	Categories *service.CategoryService
	Users      domain.UserRepository
}

// RegisterRoutes sets up all HTTP routes on the given mux. Mutating routes
// require authentication; read-only listings are public.
func RegisterRoutes(mux *http.ServeMux, svc Services, cookieSecure bool) {
	authH := NewAuthHandler(svc.Auth, cookieSecure)
	problemH := NewProblemHandler(svc.Problems, svc.Claims, svc.Lifecycle)
	projectH := NewProjectHandler(svc.Projects, svc.Lifecycle)
	categoryH := NewCategoryHandler(svc.Categories)
	boardH := NewLeaderboardHandler(svc.Scores, svc.Users)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /register", authH.Register)
	mux.HandleFunc("POST /login", authH.Login)
	mux.HandleFunc("POST /logout", authH.Logout)

	mux.HandleFunc("GET /users", boardH.ListUsers)
	mux.HandleFunc("GET /users/{id}/points", boardH.UserPoints)
	mux.HandleFunc("GET /leaderboard", boardH.Leaderboard)
	mux.HandleFunc("GET /stats", boardH.Stats)

	mux.HandleFunc("GET /categories", categoryH.List)
	mux.Handle("POST /categories", RequireAuth(svc.Auth, http.HandlerFunc(categoryH.Create)))
	mux.Handle("PUT /categories/{id}/points", RequireAuth(svc.Auth, http.HandlerFunc(categoryH.UpdatePoints)))

	mux.HandleFunc("GET /projects", projectH.List)
	mux.Handle("POST /projects", RequireAuth(svc.Auth, http.HandlerFunc(projectH.Create)))
	mux.Handle("PUT /projects/{id}/status", RequireAuth(svc.Auth, http.HandlerFunc(projectH.SetStatus)))

	mux.HandleFunc("GET /problems", problemH.List)
	mux.HandleFunc("GET /problems/{id}", problemH.Get)
	mux.Handle("POST /problems", RequireAuth(svc.Auth, http.HandlerFunc(problemH.Create)))
	mux.Handle("PUT /problems/{id}/status", RequireAuth(svc.Auth, http.HandlerFunc(problemH.SetStatus)))
	mux.Handle("POST /problems/{id}/claim", RequireAuth(svc.Auth, http.HandlerFunc(problemH.Claim)))
	mux.Handle("POST /problems/{id}/unclaim", RequireAuth(svc.Auth, http.HandlerFunc(problemH.Unclaim)))
}
