package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/bybysker/goal-tracker/internal/models"
	"github.com/bybysker/goal-tracker/internal/services/goal"
	"github.com/bybysker/goal-tracker/internal/validation"
)

// GoalHandler handles goal refinement and plan generation requests
type GoalHandler struct {
	goals  *goal.Service
	logger *zap.Logger
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(goals *goal.Service, logger *zap.Logger) *GoalHandler {
	return &GoalHandler{goals: goals, logger: logger}
}

// SmartGoalRequest is the payload for POST /smart_goal
type SmartGoalRequest struct {
	UserID      string         `json:"user_id" validate:"required"`
	PreGoalData models.PreGoal `json:"pre_goal_data"`
}

// SmartGoalResponse carries the refined goal statement
type SmartGoalResponse struct {
	SmartGoal string `json:"smart_goal"`
}

// SmartGoal rewrites a rough goal sketch into a SMART formulation,
// personalized with the user's stored profile when one exists.
func (h *GoalHandler) SmartGoal(w http.ResponseWriter, r *http.Request) {
	var req SmartGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Validation Error", "Invalid JSON payload")
		return
	}
	if err := validation.Validate.Struct(&req); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Validation Error", err.Error())
		return
	}

	req.PreGoalData.What = validation.SanitizeText(req.PreGoalData.What)
	req.PreGoalData.Why = validation.SanitizeText(req.PreGoalData.Why)
	req.PreGoalData.When = validation.SanitizeText(req.PreGoalData.When)

	text, err := h.goals.SmartGoal(r.Context(), req.UserID, req.PreGoalData)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, SmartGoalResponse{SmartGoal: text})
}

// GeneratePlanRequest is the payload for POST /generate_milestones_and_tasks
type GeneratePlanRequest struct {
	UserID        string `json:"user_id" validate:"required"`
	ValidatedGoal string `json:"validated_goal" validate:"required"`
}

// GeneratePlan decomposes a validated goal into milestones and tasks and
// persists the resulting plan atomically.
func (h *GoalHandler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req GeneratePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Validation Error", "Invalid JSON payload")
		return
	}
	if err := validation.Validate.Struct(&req); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Validation Error", err.Error())
		return
	}

	plan, err := h.goals.GeneratePlan(r.Context(), req.UserID, validation.SanitizeText(req.ValidatedGoal))
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, plan)
}
