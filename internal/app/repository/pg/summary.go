package pg

import (
	"context"
	"fmt"

	"voicebrief/internal/app/model"
)

// RecordSummary stores one processed upload and returns its id.
func (pdb *PostgresDB) RecordSummary(ctx context.Context, rec *model.SummaryRecord) (int, error) {
	insertSQL := `INSERT INTO summaries (username, file_name, transcription, summary, has_error, error_message)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;`
	var id int
	err := pdb.db.QueryRowContext(ctx, insertSQL,
		rec.Username, rec.FileName, rec.Transcription, rec.Summary, rec.HasError, rec.ErrorMessage).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert summary: %w", err)
	}
	return id, nil
}

// GetAllByUser returns the user's summaries, newest first.
func (pdb *PostgresDB) GetAllByUser(ctx context.Context, username string) ([]model.SummaryRecord, error) {
	query := `
		SELECT id, username, file_name, transcription, summary, has_error, error_message, created_at
		FROM summaries
		WHERE username = $1
		ORDER BY created_at DESC, id DESC;`
	rows, err := pdb.db.QueryContext(ctx, query, username)
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
