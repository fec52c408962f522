package api

// Transcriber converts an audio file on disk to text.
type Transcriber interface {
	Transcript(inputFilePath string) (string, error)
}
