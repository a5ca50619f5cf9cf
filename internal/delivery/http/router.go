package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"clubops/internal/delivery/http/controllers"
	"clubops/internal/delivery/http/middleware"
	"clubops/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Reads are open; every mutation goes through the bearer-token principal
// middleware (the façade re-checks club-level authorization).
func NewRouter(
	verifier domain.TokenVerifier,
	events *controllers.EventController,
	tasks *controllers.TaskController,
	budget *controllers.BudgetController,
	roster *controllers.RosterController,
) *http.ServeMux {
	mux := http.NewServeMux()
	authed := middleware.RequireAuth(verifier)

	// Events and scheduling
	mux.HandleFunc("POST /events", authed(events.CreateEvent))
	mux.HandleFunc("PATCH /events/{eventID}", authed(events.UpdateEvent))
	mux.HandleFunc("GET /events/schedule-check", events.CheckSchedule)
	mux.HandleFunc("GET /events/{eventID}/operations", events.GetOperations)
	mux.HandleFunc("PUT /events/{eventID}/operations", authed(events.SaveOperations))

	// Task board
	mux.HandleFunc("POST /events/{eventID}/tasks", authed(tasks.CreateTask))
	mux.HandleFunc("PATCH /events/{eventID}/tasks/{taskID}/status", authed(tasks.SetTaskStatus))
	mux.HandleFunc("DELETE /events/{eventID}/tasks/{taskID}", authed(tasks.DeleteTask))

	// Budget ledger
	mux.HandleFunc("POST /events/{eventID}/budget", authed(budget.AddBudgetItem))
	mux.HandleFunc("PATCH /events/{eventID}/budget/{itemID}", authed(budget.UpdateBudgetItem))
	mux.HandleFunc("DELETE /events/{eventID}/budget/{itemID}", authed(budget.DeleteBudgetItem))

	// Participant roster
	mux.HandleFunc("GET /events/{eventID}/participants", roster.ListParticipants)
	mux.HandleFunc("POST /events/{eventID}/participants", authed(roster.AddParticipant))
	mux.HandleFunc("POST /events/{eventID}/participants/import", authed(roster.ImportParticipants))
	mux.HandleFunc("PATCH /events/{eventID}/participants/{participantID}/attendance", authed(roster.SetAttendance))
	mux.HandleFunc("DELETE /events/{eventID}/participants/{participantID}", authed(roster.RemoveParticipant))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
