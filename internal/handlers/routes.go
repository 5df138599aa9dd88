package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handlers groups the HTTP handlers mounted on the router
type Handlers struct {
	Profile    *ProfileHandler
	Goal       *GoalHandler
	Transcribe *TranscribeHandler
	Health     *HealthChecker
	Version    string
}

// RegisterRoutes wires every endpoint onto the router. Rate limiting, when
// configured, applies to the LLM-backed routes only so health probes stay
// unthrottled.
func RegisterRoutes(r *mux.Router, h Handlers, rateLimit func(http.Handler) http.Handler) {
	r.HandleFunc("/healthz", h.Health.HealthCheck).Methods(http.MethodGet)
	r.HandleFunc("/version", VersionHandler(h.Version)).Methods(http.MethodGet)

	api := r.NewRoute().Subrouter()
	if rateLimit != nil {
		api.Use(mux.MiddlewareFunc(rateLimit))
	}
	api.HandleFunc("/profile_definition", h.Profile.DefineProfile).Methods(http.MethodPost)
	api.HandleFunc("/smart_goal", h.Goal.SmartGoal).Methods(http.MethodPost)
	api.HandleFunc("/generate_milestones_and_tasks", h.Goal.GeneratePlan).Methods(http.MethodPost)
	api.HandleFunc("/transcribe_voice", h.Transcribe.Transcribe).Methods(http.MethodPost)
}
