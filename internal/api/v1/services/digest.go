// Package services implements the upload processing pipeline behind the
// HTTP handlers.
package services

import (
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"voicebrief/internal/api/errors"
	"voicebrief/internal/api/v1/dto"
	"voicebrief/internal/app/api"
	"voicebrief/internal/app/api/summarizer"
	"voicebrief/internal/app/audio"
	"voicebrief/internal/app/metrics"
	"voicebrief/internal/app/model"
	"voicebrief/internal/app/repository"
	"voicebrief/internal/app/storage"
	"voicebrief/internal/app/util/files"
)

// DigestService turns an uploaded audio file into a transcript and
// summary, recording the outcome per user.
type DigestService interface {
	ProcessUpload(ctx context.Context, username, filename string, r io.Reader) (*dto.UploadResponse, error)
	History(ctx context.Context, username string) ([]dto.SummaryItem, error)
	HistoryRecords(ctx context.Context, username string) ([]model.SummaryRecord, error)
}

type digestService struct {
	store       storage.UploadStore
	transcriber api.Transcriber
	summarizer  summarizer.Summarizer
	summaries   repository.SummaryDAO
	allowedExts []string
	logger      *slog.Logger
}

// NewDigestService wires the pipeline together.
func NewDigestService(
	store storage.UploadStore,
	transcriber api.Transcriber,
	sum summarizer.Summarizer,
	summaries repository.SummaryDAO,
	allowedExts []string,
	logger *slog.Logger,
) DigestService {
	return &digestService{
		store:       store,
		transcriber: transcriber,
		summarizer:  sum,
		summaries:   summaries,
		allowedExts: allowedExts,
		logger:      logger,
	}
}

// ProcessUpload validates, stores, transcribes and summarizes one
// upload. The extension check runs before anything is written, so a
// disallowed file never reaches the transcriber.
func (s *digestService) ProcessUpload(ctx context.Context, username, filename string, r io.Reader) (*dto.UploadResponse, error) {
	if !files.AllowedExtension(filename, s.allowedExts) {
		metrics.UploadsTotal.WithLabelValues("rejected").Inc()
		return nil, errors.NewBadRequestError("Invalid file type")
	}

	saved, err := s.store.Save(ctx, r, filename, username)
	if err != nil {
		if stderrors.Is(err, storage.ErrTooLarge) {
			metrics.UploadsTotal.WithLabelValues("rejected").Inc()
			return nil, errors.NewBadRequestError("File is too large")
		}
		metrics.UploadsTotal.WithLabelValues("store_error").Inc()
		s.logger.Error("failed to store upload", "username", username, "error", err.Error())
		return nil, errors.NewInternalError("Failed to store upload")
	}

	start := time.Now()
	transcription, err := s.transcriber.Transcript(saved.Path)
	metrics.TranscriptionDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("bad_audio").Inc()
		if stderrors.Is(err, audio.ErrUnsupportedFormat) {
			return nil, errors.NewValidationError("Audio file must be WAV format mono PCM", nil)
		}
		s.logger.Warn("transcription failed",
			"username", username,
			"file", saved.StoredName,
			"error", err.Error(),
		)
		return nil, errors.NewBadRequestError("Unable to decode audio file")
	}

	summary, err := s.summarizer.Summarize(ctx, transcription)
	if err != nil {
		metrics.SummarizerErrors.Inc()
		metrics.UploadsTotal.WithLabelValues("summarizer_error").Inc()
		s.logger.Error("summarization failed",
			"username", username,
			"file", saved.StoredName,
			"error", err.Error(),
		)
		s.record(ctx, username, saved.Name, transcription, "", err.Error())
		return nil, errors.NewServiceUnavailableError("Unable to summarize text")
	}

	s.record(ctx, username, saved.Name, transcription, summary, "")
	metrics.UploadsTotal.WithLabelValues("success").Inc()

	return &dto.UploadResponse{
		Message:       "Audio processed successfully",
		Transcription: transcription,
		Summary:       summary,
	}, nil
}

// record keeps the history row; a failure here is logged but does not
// fail the request, the user already has their result.
func (s *digestService) record(ctx context.Context, username, fileName, transcription, summary, errorMessage string) {
	hasError := 0
	if errorMessage != "" {
		hasError = 1
	}
	_, err := s.summaries.RecordSummary(ctx, &model.SummaryRecord{
		Username:      username,
		FileName:      fileName,
		Transcription: transcription,
		Summary:       summary,
		HasError:      hasError,
		ErrorMessage:  errorMessage,
	})
	if err != nil {
		s.logger.Error("failed to record summary", "username", username, "error", err.Error())
	}
}

// History returns the user's processed uploads for display.
func (s *digestService) History(ctx context.Context, username string) ([]dto.SummaryItem, error) {
	records, err := s.summaries.GetAllByUser(ctx, username)
	if err != nil {
		return nil, err
	}

	return lo.Map(records, func(r model.SummaryRecord, _ int) dto.SummaryItem {
		return dto.SummaryItem{
			ID:            r.ID,
			FileName:      r.FileName,
			Transcription: r.Transcription,
			Summary:       r.Summary,
			HasError:      r.HasError != 0,
			ErrorMessage:  r.ErrorMessage,
			CreatedAt:     r.CreatedAt,
		}
	}), nil
}

// HistoryRecords returns raw records for export.
func (s *digestService) HistoryRecords(ctx context.Context, username string) ([]model.SummaryRecord, error) {
	return s.summaries.GetAllByUser(ctx, username)
}
