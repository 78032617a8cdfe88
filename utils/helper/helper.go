package helper

import (
	"os"

	"github.com/go-audio/wav"
)

// GetDuration gets the duration of audio file
func GetDuration(filepath string) (int64, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	dur, err := wav.NewDecoder(f).Duration()
	if err != nil {
		return 0, err
	}
	return dur.Milliseconds(), nil
}
