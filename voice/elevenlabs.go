package voice

import (
	"context"
	"time"

	"github.com/haguro/elevenlabs-go"
)

// ElevenLabs speaks through the ElevenLabs API. The monolingual model
// ignores the language tag.
type ElevenLabs struct {
	APIKey  string
	VoiceID string
}

var _ Synthesizer = &ElevenLabs{}

func (api *ElevenLabs) Synthesize(ctx context.Context, text string, language string) ([]byte, error) {
	client := elevenlabs.NewClient(ctx, api.APIKey, 30*time.Second)

	ttsReq := elevenlabs.TextToSpeechRequest{
		Text:    text,
		ModelID: "eleven_monolingual_v1",
	}

	audio, err := client.TextToSpeech(api.VoiceID, ttsReq)
	if err != nil {
		return nil, &SynthesisError{Text: text, Err: err}
	}

	return audio, nil
}
