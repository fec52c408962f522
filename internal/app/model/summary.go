package model

import "time"

// SummaryRecord is one processed upload: the stored file name, the
// recognized transcript and its summary. Failed summarizations are kept
// with HasError set so the history shows what happened.
type SummaryRecord struct {
	ID            int
	Username      string
	FileName      string
	Transcription string
	Summary       string
	HasError      int
	ErrorMessage  string
	CreatedAt     time.Time
}
