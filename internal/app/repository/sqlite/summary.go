package sqlite

import (
	"context"
	"fmt"

	"voicebrief/internal/app/model"
)

// RecordSummary stores one processed upload and returns its id.
func (sdb *SQLiteDB) RecordSummary(ctx context.Context, rec *model.SummaryRecord) (int, error) {
	insertSQL := `INSERT INTO summaries (username, file_name, transcription, summary, has_error, error_message)
		VALUES (?, ?, ?, ?, ?, ?);`
	res, err := sdb.db.ExecContext(ctx, insertSQL,
		rec.Username, rec.FileName, rec.Transcription, rec.Summary, rec.HasError, rec.ErrorMessage)
	if err != nil {
		return 0, fmt.Errorf("failed to insert summary: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read insert id: %w", err)
	}
	return int(id), nil
}

// GetAllByUser returns the user's summaries, newest first.
func (sdb *SQLiteDB) GetAllByUser(ctx context.Context, username string) ([]model.SummaryRecord, error) {
	query := `
		SELECT id, username, file_name, transcription, summary, has_error, error_message, created_at
		FROM summaries
		WHERE username = ?
		ORDER BY created_at DESC, id DESC;`
	rows, err := sdb.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	records := make([]model.SummaryRecord, 0)
	for rows.Next() {
		var r model.SummaryRecord
		err = rows.Scan(&r.ID, &r.Username, &r.FileName, &r.Transcription, &r.Summary,
			&r.HasError, &r.ErrorMessage, &r.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
