package handlers

import (
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/bybysker/goal-tracker/internal/services/transcribe"
)

// voiceMemoField is the multipart form field carrying the audio upload
const voiceMemoField = "voice_memo"

// TranscribeHandler handles voice memo transcription requests
type TranscribeHandler struct {
	transcriber transcribe.Transcriber
	logger      *zap.Logger
}

// NewTranscribeHandler creates a new transcription handler
func NewTranscribeHandler(transcriber transcribe.Transcriber, logger *zap.Logger) *TranscribeHandler {
	return &TranscribeHandler{transcriber: transcriber, logger: logger}
}

// TranscribeResponse carries the transcribed text
type TranscribeResponse struct {
	Transcription string `json:"transcription"`
}

// Transcribe accepts a multipart voice memo upload and returns its
// transcription. Failures use the same error envelope as every other
// endpoint rather than a success-status body with an error field.
func (h *TranscribeHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile(voiceMemoField)
	if err != nil {
		respondJSONError(w, http.StatusBadRequest, "Validation Error", "Missing voice_memo file upload")
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		respondJSONError(w, http.StatusBadRequest, "Validation Error", "Could not read uploaded file")
		return
	}
	if len(audio) == 0 {
		respondJSONError(w, http.StatusBadRequest, "Validation Error", "Uploaded file is empty")
		return
	}

	text, err := h.transcriber.Transcribe(r.Context(), audio, header.Filename)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, TranscribeResponse{Transcription: text})
}
