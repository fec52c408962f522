package dto

import "time"

// UploadResponse is the JSON body returned for a processed upload.
type UploadResponse struct {
	Message       string `json:"message"`
	Transcription string `json:"transcription"`
	Summary       string `json:"summary"`
}

// SummaryItem is one row of a user's history.
type SummaryItem struct {
	ID            int       `json:"id"`
	FileName      string    `json:"file_name"`
	Transcription string    `json:"transcription"`
	Summary       string    `json:"summary"`
	HasError      bool      `json:"has_error"`
	ErrorMessage  string    `json:"error_message,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
