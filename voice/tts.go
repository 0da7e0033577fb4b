package voice

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Synthesizer converts text to engine-native audio bytes (MP3).
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, language string) ([]byte, error)
}

// SynthesisError reports a failed text-to-speech call.
type SynthesisError struct {
	Text string
	Err  error
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("synthesis of %q failed; %v", e.Text, e.Err)
}

func (e *SynthesisError) Unwrap() error { return e.Err }

// --- utilities for this package

func hashString(input string) string {
	hash := sha256.New()
	hash.Write([]byte(input))
	return hex.EncodeToString(hash.Sum(nil))
}
