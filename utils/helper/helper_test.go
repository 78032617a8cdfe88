package helper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

func TestGetDuration(t *testing.T) {
	// One second of 8kHz mono silence.
	path := filepath.Join(t.TempDir(), "test.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test file, %s", err)
	}
	enc := wav.NewEncoder(f, 8000, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: 8000},
		Data:           make([]int, 8000),
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("failed to write samples, %s", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("failed to close encoder, %s", err)
	}
	f.Close()

	dur, err := GetDuration(path)
	if err != nil {
		t.Fatalf("failed to get duration, %s", err)
	}
	if dur != 1000 {
		t.Errorf("got duration = %d, expected = 1000", dur)
	}
}

func TestGetDurationMissingFile(t *testing.T) {
	if _, err := GetDuration("does-not-exist.wav"); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}
