package stitch

import (
	"context"
	"sync"

	"stitcher/storage"
	"stitcher/transcoding"
)

// byteCodec treats every byte as one sample, so encode(decode(x)) == x
// and stitched output is the plain concatenation of the snippet bytes.
type byteCodec struct{}

func (byteCodec) DecodeMP3(data []byte) (*transcoding.PCM, error) { return bytesToPCM(data), nil }
func (byteCodec) DecodeWAV(data []byte) (*transcoding.PCM, error) { return bytesToPCM(data), nil }

func (byteCodec) EncodeWAV(pcm *transcoding.PCM) ([]byte, error) {
	data := make([]byte, len(pcm.Samples))
	for i, s := range pcm.Samples {
		data[i] = byte(s)
	}
	return data, nil
}

func (byteCodec) Concat(a, b *transcoding.PCM) (*transcoding.PCM, error) {
	samples := append(append([]int{}, a.Samples...), b.Samples...)
	return &transcoding.PCM{SampleRate: a.SampleRate, Channels: a.Channels, BitDepth: a.BitDepth, Samples: samples}, nil
}

func bytesToPCM(data []byte) *transcoding.PCM {
	samples := make([]int, len(data))
	for i, b := range data {
		samples[i] = int(b)
	}
	return &transcoding.PCM{SampleRate: 8000, Channels: 1, BitDepth: 16, Samples: samples}
}

// countingTTS records every synthesis call and answers "tts:<text>".
type countingTTS struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (c *countingTTS) Synthesize(ctx context.Context, text string, language string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls = append(c.calls, text)
	if c.err != nil {
		return nil, c.err
	}
	return []byte("tts:" + text), nil
}

func (c *countingTTS) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.calls)
}

// failingStore fails every operation with the same wrapped error.
type failingStore struct {
	err error
}

func (f *failingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return nil, &storage.Error{Op: "list", Key: prefix, Err: f.err}
}

func (f *failingStore) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, &storage.Error{Op: "get", Key: key, Err: f.err}
}

func (f *failingStore) Put(ctx context.Context, key string, data []byte) error {
	return &storage.Error{Op: "put", Key: key, Err: f.err}
}
