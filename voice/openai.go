package voice

import (
	"context"
	"io"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAI speaks through the OpenAI speech endpoint.
type OpenAI struct {
	APIKey string
	Voice  string // defaults to alloy
}

var _ Synthesizer = &OpenAI{}

func (api *OpenAI) Synthesize(ctx context.Context, text string, language string) ([]byte, error) {
	client := openai.NewClient(api.APIKey)

	voice := openai.SpeechVoice(api.Voice)
	if voice == "" {
		voice = openai.VoiceAlloy
	}

	resp, err := client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.TTSModel1,
		Input:          text,
		Voice:          voice,
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return nil, &SynthesisError{Text: text, Err: err}
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, &SynthesisError{Text: text, Err: err}
	}

	return audio, nil
}
