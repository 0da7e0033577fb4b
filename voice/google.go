package voice

import (
	"context"
	"errors"
	"os"

	htgotts "github.com/hegedustibor/htgo-tts"
	"github.com/sirupsen/logrus"
)

// Google speaks through the Google translate voice. The engine only writes
// to disk, so Folder is a scratch directory; the file is removed once read.
type Google struct {
	Folder string
}

var _ Synthesizer = &Google{}

func (api *Google) Synthesize(ctx context.Context, text string, language string) ([]byte, error) {
	speech := htgotts.Speech{Folder: api.Folder, Language: language}
	path, err := speech.CreateSpeechFile(text, hashString(text))
	if err != nil {
		return nil, &SynthesisError{Text: text, Err: err}
	}
	defer os.Remove(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &SynthesisError{Text: text, Err: err}
	}

	// the engine answers long or rejected lines with a fixed placeholder MP3
	if len(data) == 1685 {
		logrus.WithField("line", text).Infoln("htgotts returned bad MP3 file")
		return nil, &SynthesisError{Text: text, Err: errors.New("failed to gen speech - line too long")}
	}

	return data, nil
}
