// Package audio validates uploaded WAV files and streams their PCM
// payload in fixed-size chunks for the recognizer.
package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// ErrUnsupportedFormat marks files the recognizer cannot consume: not
// mono, not 16-bit PCM, or a sample rate outside [8000, 48000] Hz.
var ErrUnsupportedFormat = errors.New("audio file must be WAV format mono PCM")

// ChunkFrames is the number of frames fed to the recognizer per call.
const ChunkFrames = 4000

const (
	minSampleRate = 8000
	maxSampleRate = 48000
)

// WavReader decodes a validated mono 16-bit PCM WAV file.
type WavReader struct {
	f   *os.File
	dec *wav.Decoder
	buf *audio.IntBuffer

	// SampleRate of the file, needed to construct the recognizer.
	SampleRate int
}

// OpenWav opens path and checks the format contract. Violations return
// ErrUnsupportedFormat; a file that is not WAV at all returns a decode
// error.
func OpenWav(path string) (*WavReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}

	dec := wav.NewDecoder(f)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to decode WAV header: %w", err)
	}
	if dec.SampleRate == 0 {
		f.Close()
		return nil, fmt.Errorf("failed to decode WAV header: not a valid WAV file")
	}

	if dec.WavAudioFormat != 1 || dec.NumChans != 1 || dec.BitDepth != 16 ||
		dec.SampleRate < minSampleRate || dec.SampleRate > maxSampleRate {
		f.Close()
		return nil, ErrUnsupportedFormat
	}

	return &WavReader{
		f:   f,
		dec: dec,
		buf: &audio.IntBuffer{
			Format: &audio.Format{NumChannels: 1, SampleRate: int(dec.SampleRate)},
			Data:   make([]int, ChunkFrames),
		},
		SampleRate: int(dec.SampleRate),
	}, nil
}

// ReadChunk returns up to ChunkFrames frames of raw little-endian
// 16-bit PCM. It returns io.EOF once the file is exhausted.
func (w *WavReader) ReadChunk() ([]byte, error) {
	n, err := w.dec.PCMBuffer(w.buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read PCM data: %w", err)
	}
	if n == 0 {
		return nil, io.EOF
	}

	data := make([]byte, n*2)
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint16(data[i*2:], uint16(int16(w.buf.Data[i])))
	}
	return data, nil
}

func (w *WavReader) Close() error {
	return w.f.Close()
}
