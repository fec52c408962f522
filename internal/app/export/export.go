// Package export renders summary history as an xlsx workbook.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/tealeg/xlsx"

	"voicebrief/internal/app/model"
)

// ToExcel writes the records to w as a single-sheet workbook.
func ToExcel(records []model.SummaryRecord, w io.Writer) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Summaries")
	if err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "ID"
	headerRow.AddCell().Value = "File Name"
	headerRow.AddCell().Value = "Created At"
	headerRow.AddCell().Value = "Transcription"
	headerRow.AddCell().Value = "Summary"
	headerRow.AddCell().Value = "Error Message"

	for _, r := range records {
		row := sheet.AddRow()
		row.AddCell().Value = fmt.Sprint(r.ID)
		row.AddCell().Value = r.FileName
		row.AddCell().Value = r.CreatedAt.Format(time.RFC3339)
		row.AddCell().Value = r.Transcription
		row.AddCell().Value = r.Summary
		row.AddCell().Value = r.ErrorMessage
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
