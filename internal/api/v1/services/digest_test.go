package services

import (
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voicebrief/internal/api/errors"
	"voicebrief/internal/app/audio"
	"voicebrief/internal/app/model"
	"voicebrief/internal/app/storage"
)

type fakeStore struct {
	saveErr error
	saved   []string
}

func (f *fakeStore) Save(_ context.Context, r io.Reader, filename, username string) (*storage.SavedFile, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	io.Copy(io.Discard, r)
	f.saved = append(f.saved, filename)
	return &storage.SavedFile{
		Name:       filename,
		StoredName: "uuid_" + filename,
		Path:       filepath.Join("/tmp/uploads", "uuid_"+filename),
		UploadedAt: time.Now(),
	}, nil
}

type fakeTranscriber struct {
	text  string
	err   error
	calls int
}

func (f *fakeTranscriber) Transcript(inputFilePath string) (string, error) {
	f.calls++
	return f.text, f.err
}

type fakeSummarizer struct {
	text  string
	err   error
	calls int
}

func (f *fakeSummarizer) Summarize(_ context.Context, text string) (string, error) {
	f.calls++
	return f.text, f.err
}

type fakeSummaryDAO struct {
	records   []model.SummaryRecord
	recordErr error
	getErr    error
}

func (f *fakeSummaryDAO) RecordSummary(_ context.Context, rec *model.SummaryRecord) (int, error) {
	if f.recordErr != nil {
		return 0, f.recordErr
	}
	rec.ID = len(f.records) + 1
	rec.CreatedAt = time.Now()
	f.records = append(f.records, *rec)
	return rec.ID, nil
}

func (f *fakeSummaryDAO) GetAllByUser(_ context.Context, username string) ([]model.SummaryRecord, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	var out []model.SummaryRecord
	for _, r := range f.records {
		if r.Username == username {
			out = append(out, r)
		}
	}
	return out, nil
}

type pipeline struct {
	store       *fakeStore
	transcriber *fakeTranscriber
	summarizer  *fakeSummarizer
	summaries   *fakeSummaryDAO
	service     DigestService
}

func newPipeline() *pipeline {
	p := &pipeline{
		store:       &fakeStore{},
		transcriber: &fakeTranscriber{text: "we shipped the release"},
		summarizer:  &fakeSummarizer{text: "release shipped"},
		summaries:   &fakeSummaryDAO{},
	}
	p.service = NewDigestService(
		p.store,
		p.transcriber,
		p.summarizer,
		p.summaries,
		[]string{"wav"},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return p
}

func TestProcessUpload(t *testing.T) {
	p := newPipeline()

	resp, err := p.service.ProcessUpload(context.Background(), "alice", "standup.wav", strings.NewReader("RIFF"))
	require.NoError(t, err)

	assert.Equal(t, "Audio processed successfully", resp.Message)
	assert.Equal(t, "we shipped the release", resp.Transcription)
	assert.Equal(t, "release shipped", resp.Summary)

	require.Len(t, p.summaries.records, 1)
	rec := p.summaries.records[0]
	assert.Equal(t, "alice", rec.Username)
	assert.Equal(t, "standup.wav", rec.FileName)
	assert.Equal(t, 0, rec.HasError)
}

func TestProcessUpload_DisallowedExtension(t *testing.T) {
	p := newPipeline()

	_, err := p.service.ProcessUpload(context.Background(), "alice", "malware.exe", strings.NewReader("MZ"))
	require.Error(t, err)

	var apiErr *errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.HTTPStatus())
	assert.Equal(t, "Invalid file type", apiErr.Message)

	// Rejected before anything was stored or transcribed.
	assert.Empty(t, p.store.saved)
	assert.Zero(t, p.transcriber.calls)
	assert.Zero(t, p.summarizer.calls)
}

func TestProcessUpload_StoreFailure(t *testing.T) {
	p := newPipeline()
	p.store.saveErr = stderrors.New("disk full")

	_, err := p.service.ProcessUpload(context.Background(), "alice", "standup.wav", strings.NewReader("RIFF"))
	require.Error(t, err)

	// A failing store is a server-side fault, not the client's.
	var apiErr *errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.HTTPStatus())
	assert.Zero(t, p.transcriber.calls)
}

func TestProcessUpload_FileTooLarge(t *testing.T) {
	p := newPipeline()
	p.store.saveErr = storage.ErrTooLarge

	_, err := p.service.ProcessUpload(context.Background(), "alice", "standup.wav", strings.NewReader("RIFF"))
	require.Error(t, err)

	var apiErr *errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.HTTPStatus())
	assert.Equal(t, "File is too large", apiErr.Message)
	assert.Zero(t, p.transcriber.calls)
}

func TestProcessUpload_UnsupportedAudioFormat(t *testing.T) {
	p := newPipeline()
	p.transcriber.err = audio.ErrUnsupportedFormat

	_, err := p.service.ProcessUpload(context.Background(), "alice", "stereo.wav", strings.NewReader("RIFF"))
	require.Error(t, err)

	var apiErr *errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.HTTPStatus())
	assert.Equal(t, "Audio file must be WAV format mono PCM", apiErr.Message)
	assert.Zero(t, p.summarizer.calls)
}

func TestProcessUpload_UndecodableAudio(t *testing.T) {
	p := newPipeline()
	p.transcriber.err = stderrors.New("failed to decode WAV header")

	_, err := p.service.ProcessUpload(context.Background(), "alice", "broken.wav", strings.NewReader("junk"))
	require.Error(t, err)

	var apiErr *errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.HTTPStatus())
}

func TestProcessUpload_SummarizerFailure(t *testing.T) {
	p := newPipeline()
	p.summarizer.err = stderrors.New("inference API returned status 503")

	_, err := p.service.ProcessUpload(context.Background(), "alice", "standup.wav", strings.NewReader("RIFF"))
	require.Error(t, err)

	var apiErr *errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.HTTPStatus())
	assert.Equal(t, "Unable to summarize text", apiErr.Message)

	// The failure is still recorded with the transcript.
	require.Len(t, p.summaries.records, 1)
	rec := p.summaries.records[0]
	assert.Equal(t, 1, rec.HasError)
	assert.Equal(t, "we shipped the release", rec.Transcription)
	assert.Empty(t, rec.Summary)
	assert.Contains(t, rec.ErrorMessage, "503")
}

func TestProcessUpload_RecordFailureDoesNotFailRequest(t *testing.T) {
	p := newPipeline()
	p.summaries.recordErr = stderrors.New("db locked")

	resp, err := p.service.ProcessUpload(context.Background(), "alice", "standup.wav", strings.NewReader("RIFF"))
	require.NoError(t, err)
	assert.Equal(t, "release shipped", resp.Summary)
}

func TestHistory(t *testing.T) {
	p := newPipeline()

	_, err := p.service.ProcessUpload(context.Background(), "alice", "standup.wav", strings.NewReader("RIFF"))
	require.NoError(t, err)
	_, err = p.service.ProcessUpload(context.Background(), "bob", "retro.wav", strings.NewReader("RIFF"))
	require.NoError(t, err)

	items, err := p.service.History(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "standup.wav", items[0].FileName)
	assert.Equal(t, "release shipped", items[0].Summary)
	assert.False(t, items[0].HasError)
}

func TestHistory_StoreFailure(t *testing.T) {
	p := newPipeline()
	p.summaries.getErr = stderrors.New("connection reset")

	_, err := p.service.History(context.Background(), "alice")
	assert.Error(t, err)
}
