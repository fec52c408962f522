package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"

	"voicebrief/internal/app/model"
)

func TestToExcel(t *testing.T) {
	records := []model.SummaryRecord{
		{
			ID:            1,
			Username:      "alice",
			FileName:      "standup.wav",
			Transcription: "we discussed the roadmap",
			Summary:       "roadmap discussion",
			CreatedAt:     time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:           2,
			Username:     "alice",
			FileName:     "retro.wav",
			HasError:     1,
			ErrorMessage: "summarization failed",
			CreatedAt:    time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, ToExcel(records, &buf))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	assert.Equal(t, "Summaries", sheet.Name)
	require.Len(t, sheet.Rows, 3)

	assert.Equal(t, "File Name", sheet.Rows[0].Cells[1].Value)
	assert.Equal(t, "standup.wav", sheet.Rows[1].Cells[1].Value)
	assert.Equal(t, "roadmap discussion", sheet.Rows[1].Cells[4].Value)
	assert.Equal(t, "summarization failed", sheet.Rows[2].Cells[5].Value)
}

func TestToExcel_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ToExcel(nil, &buf))
	assert.NotZero(t, buf.Len())
}
