// Package vosk implements the local offline transcriber on top of the
// Vosk speech recognition toolkit.
package vosk

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	voskapi "github.com/alphacep/vosk-api/go"

	"voicebrief/internal/app/audio"
)

// Model is the process-wide speech model handle. It is loaded once at
// startup, shared read-only across requests, and freed on shutdown.
type Model struct {
	m *voskapi.VoskModel
}

// LoadModel loads the Vosk model directory at path.
func LoadModel(path string) (*Model, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("vosk model not found at %s: %w", path, err)
	}

	m, err := voskapi.NewModel(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load vosk model: %w", err)
	}
	return &Model{m: m}, nil
}

// Free releases the model. Call only after all requests have drained.
func (m *Model) Free() {
	if m.m != nil {
		m.m.Free()
	}
}

// recognizer is the streaming interface the transcriber drives. The
// concrete implementation is a Vosk recognizer; tests substitute fakes.
type recognizer interface {
	AcceptWaveform(buffer []byte) int
	Result() string
	FinalResult() string
	Free()
}

// LocalTranscriber implements api.Transcriber with a shared Model and a
// per-file recognizer at the file's sample rate.
type LocalTranscriber struct {
	model         *Model
	newRecognizer func(sampleRate int) (recognizer, error)
}

// NewLocalTranscriber creates a transcriber using the given model.
func NewLocalTranscriber(model *Model) *LocalTranscriber {
	t := &LocalTranscriber{model: model}
	t.newRecognizer = t.voskRecognizer
	return t
}

func (t *LocalTranscriber) voskRecognizer(sampleRate int) (recognizer, error) {
	rec, err := voskapi.NewRecognizer(t.model.m, float64(sampleRate))
	if err != nil {
		return nil, fmt.Errorf("failed to create recognizer: %w", err)
	}
	return rec, nil
}

// Transcript streams the file's PCM through the recognizer in
// fixed-size chunks, accumulating each accepted segment plus the final
// flush result.
func (t *LocalTranscriber) Transcript(inputFilePath string) (string, error) {
	wr, err := audio.OpenWav(inputFilePath)
	if err != nil {
		return "", err
	}
	defer wr.Close()

	rec, err := t.newRecognizer(wr.SampleRate)
	if err != nil {
		return "", err
	}
	defer rec.Free()

	var sb strings.Builder
	for {
		chunk, err := wr.ReadChunk()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}

		if rec.AcceptWaveform(chunk) != 0 {
			text, err := parseText(rec.Result())
			if err != nil {
				return "", err
			}
			sb.WriteString(text)
			sb.WriteString(" ")
		}
	}

	finalText, err := parseText(rec.FinalResult())
	if err != nil {
		return "", err
	}
	sb.WriteString(finalText)

	return sb.String(), nil
}

func parseText(raw string) (string, error) {
	var result struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return "", fmt.Errorf("failed to parse recognizer result: %w", err)
	}
	return result.Text, nil
}
