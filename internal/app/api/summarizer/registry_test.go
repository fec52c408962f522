package summarizer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSummarizer struct{ text string }

func (s *staticSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	return s.text, nil
}

func TestRegisterAndNew(t *testing.T) {
	Register("static-test", func(opts Options) (Summarizer, error) {
		reply, _ := opts.Settings["reply"].(string)
		return &staticSummarizer{text: reply}, nil
	})

	s, err := New("static-test", Options{Settings: map[string]interface{}{"reply": "ok"}})
	require.NoError(t, err)

	out, err := s.Summarize(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New("does-not-exist", Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not registered")
}

func TestListRegistered(t *testing.T) {
	Register("listed-test", func(opts Options) (Summarizer, error) {
		return &staticSummarizer{}, nil
	})

	assert.Contains(t, ListRegistered(), "listed-test")
}
