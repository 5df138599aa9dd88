// Package transcribe forwards uploaded voice memos to the speech-to-text
// API and returns plain text.
package transcribe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"
)

// TranscriptionError represents a speech-to-text provider failure.
type TranscriptionError struct {
	Filename string
	Err      error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("transcription of %s failed: %v", e.Filename, e.Err)
}

func (e *TranscriptionError) Unwrap() error {
	return e.Err
}

// IsTranscriptionError checks whether an error came from the
// speech-to-text provider.
func IsTranscriptionError(err error) bool {
	var trErr *TranscriptionError
	return errors.As(err, &trErr)
}

// Transcriber is the interface the HTTP facade depends on.
type Transcriber interface {
	// Transcribe forwards the raw bytes with the original filename (the
	// extension tells the provider the codec) and returns plain text.
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
}

const (
	// DefaultModel is the speech-to-text model.
	DefaultModel = openai.AudioModelWhisper1
	// DefaultTimeout is the timeout for transcription calls; audio uploads
	// take longer than chat completions.
	DefaultTimeout = 120 * time.Second
)

// Service implements Transcriber against the OpenAI audio API.
type Service struct {
	client openai.Client
	logger *zap.Logger
}

var _ Transcriber = (*Service)(nil)

// New creates a transcription service.
func New(apiKey string, logger *zap.Logger) *Service {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithRequestTimeout(DefaultTimeout),
	)
	return &Service{client: client, logger: logger}
}

// Transcribe streams the audio buffer to the speech-to-text call and
// returns the transcription text. Provider failures are wrapped as
// TranscriptionError.
func (s *Service) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	start := time.Now()

	resp, err := s.client.Audio.Transcriptions.New(ctx, openai.AudioTranscriptionNewParams{
		Model: DefaultModel,
		File:  openai.File(bytes.NewReader(audio), filename, "application/octet-stream"),
	})
	if err != nil {
		if s.logger != nil {
			s.logger.Error("transcription_failed",
				zap.String("filename", filename),
				zap.Int("audio_bytes", len(audio)),
				zap.Error(err),
			)
		}
		return "", &TranscriptionError{Filename: filename, Err: err}
	}

	if s.logger != nil {
		s.logger.Info("transcription_completed",
			zap.String("filename", filename),
			zap.Int("audio_bytes", len(audio)),
			zap.Int("text_length", len(resp.Text)),
			zap.Int64("latency_ms", time.Since(start).Milliseconds()),
		)
	}

	return resp.Text, nil
}
