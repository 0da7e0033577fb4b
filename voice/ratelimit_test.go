package voice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingTTS struct {
	calls int
}

func (c *countingTTS) Synthesize(ctx context.Context, text string, language string) ([]byte, error) {
	c.calls++
	return []byte("audio:" + text), nil
}

func TestRateLimitPassesThrough(t *testing.T) {
	inner := &countingTTS{}
	limited := RateLimit(inner, 100)

	audio, err := limited.Synthesize(context.Background(), "cat", "en")
	assert.NoError(t, err)
	assert.Equal(t, []byte("audio:cat"), audio)
	assert.Equal(t, 1, inner.calls)
}

func TestRateLimitCancelledContext(t *testing.T) {
	inner := &countingTTS{}
	// burst of 1 at a very low rate; second call has to wait
	limited := RateLimit(inner, 0.001)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := limited.Synthesize(ctx, "cat", "en")
	assert.NoError(t, err)

	_, err = limited.Synthesize(ctx, "dog", "en")
	assert.Error(t, err)

	var serr *SynthesisError
	assert.True(t, errors.As(err, &serr))
	assert.Equal(t, "dog", serr.Text)
	assert.Equal(t, 1, inner.calls)
}
