package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/bybysker/goal-tracker/internal/services/llm"
	"github.com/bybysker/goal-tracker/internal/services/transcribe"
	"github.com/bybysker/goal-tracker/internal/store"
)

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]any{
		"success":   true,
		"data":      data,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// sanitizeErrorMessage removes internal details from error messages
func sanitizeErrorMessage(message string) string {
	sanitized := message
	if len(sanitized) > 200 {
		sanitized = sanitized[:200] + "..."
	}
	return sanitized
}

// respondJSONError sends an error JSON response with sanitized error messages
func respondJSONError(w http.ResponseWriter, status int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]any{
		"success":   false,
		"error":     errorType,
		"message":   sanitizeErrorMessage(message),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// respondServiceError maps service-layer errors onto a uniform error envelope.
// Every endpoint, including transcription, reports failures through this path.
func respondServiceError(w http.ResponseWriter, logger *zap.Logger, err error) {
	switch {
	case llm.IsSchemaError(err):
		logger.Error("llm_schema_error", zap.Error(err))
		respondJSONError(w, http.StatusBadGateway, "LLM Response Invalid", "The language model returned a response that could not be parsed")
	case llm.IsCompletionError(err):
		logger.Error("llm_completion_error", zap.Error(err))
		respondJSONError(w, http.StatusBadGateway, "LLM Provider Error", "The language model request failed")
	case transcribe.IsTranscriptionError(err):
		logger.Error("transcription_error", zap.Error(err))
		respondJSONError(w, http.StatusBadGateway, "Transcription Error", "The audio could not be transcribed")
	case errors.Is(err, store.ErrNotFound):
		respondJSONError(w, http.StatusNotFound, "Not Found", "The requested resource does not exist")
	case store.IsStoreError(err):
		logger.Error("store_error", zap.Error(err))
		respondJSONError(w, http.StatusInternalServerError, "Storage Error", "The operation could not be persisted")
	default:
		logger.Error("internal_error", zap.Error(err))
		respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred")
	}
}
