package transcoding

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	mp3 "github.com/hajimehoshi/go-mp3"
)

// Codec decodes and encodes audio with go-mp3 and go-audio.
type Codec struct{}

var _ Transcoder = Codec{}

// DecodeMP3 decodes MP3 bytes to PCM. go-mp3 always emits 16-bit
// little-endian stereo at the stream's native sample rate.
func (Codec) DecodeMP3(data []byte) (*PCM, error) {
	decoder, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, &Error{Op: "decode", Err: fmt.Errorf("failed to open mp3 stream; %w", err)}
	}

	raw, err := io.ReadAll(decoder)
	if err != nil {
		return nil, &Error{Op: "decode", Err: fmt.Errorf("failed to read mp3 frames; %w", err)}
	}

	samples := make([]int, len(raw)/2)
	for i := range samples {
		samples[i] = int(int16(uint16(raw[2*i]) | uint16(raw[2*i+1])<<8))
	}

	return &PCM{
		SampleRate: int(decoder.SampleRate()),
		Channels:   2,
		BitDepth:   16,
		Samples:    samples,
	}, nil
}

func (Codec) DecodeWAV(data []byte) (*PCM, error) {
	decoder := wav.NewDecoder(bytes.NewReader(data))
	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, &Error{Op: "decode", Err: fmt.Errorf("failed to decode wav; %w", err)}
	}

	return &PCM{
		SampleRate: buf.Format.SampleRate,
		Channels:   buf.Format.NumChannels,
		BitDepth:   int(decoder.BitDepth),
		Samples:    buf.Data,
	}, nil
}

func (Codec) EncodeWAV(pcm *PCM) ([]byte, error) {
	if pcm == nil || len(pcm.Samples) == 0 {
		return nil, &Error{Op: "encode", Err: errors.New("no samples to encode")}
	}

	buf := &writeSeekBuffer{}
	encoder := wav.NewEncoder(buf, pcm.SampleRate, pcm.BitDepth, pcm.Channels, 1)

	intBuffer := &audio.IntBuffer{
		Format: &audio.Format{
			SampleRate:  pcm.SampleRate,
			NumChannels: pcm.Channels,
		},
		Data:           pcm.Samples,
		SourceBitDepth: pcm.BitDepth,
	}
	if err := encoder.Write(intBuffer); err != nil {
		return nil, &Error{Op: "encode", Err: fmt.Errorf("failed to write wav samples; %w", err)}
	}
	if err := encoder.Close(); err != nil {
		return nil, &Error{Op: "encode", Err: fmt.Errorf("failed to finalize wav; %w", err)}
	}

	return buf.Bytes(), nil
}

// Concat appends b's samples after a's. Both sides must share one format;
// there is no resampling here.
func (Codec) Concat(a, b *PCM) (*PCM, error) {
	if a.SampleRate != b.SampleRate || a.Channels != b.Channels || a.BitDepth != b.BitDepth {
		return nil, &Error{Op: "concat", Err: fmt.Errorf(
			"format mismatch: %dHz/%dch/%dbit vs %dHz/%dch/%dbit",
			a.SampleRate, a.Channels, a.BitDepth,
			b.SampleRate, b.Channels, b.BitDepth,
		)}
	}

	samples := make([]int, 0, len(a.Samples)+len(b.Samples))
	samples = append(samples, a.Samples...)
	samples = append(samples, b.Samples...)

	return &PCM{
		SampleRate: a.SampleRate,
		Channels:   a.Channels,
		BitDepth:   a.BitDepth,
		Samples:    samples,
	}, nil
}
